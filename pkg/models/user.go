package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a site subscriber. The (email, phone) pair is the lookup key for
// the subscription endpoints; the donation path keys on email alone.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email_phone"`
	Phone     string    `json:"phone" gorm:"type:varchar(30);not null;uniqueIndex:idx_users_email_phone"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100)"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
