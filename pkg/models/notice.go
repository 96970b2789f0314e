package models

import (
	"time"

	"github.com/google/uuid"
)

// Notice is a public event announcement, independent of any user. It backs
// the announcements page; all fields are required on creation.
type Notice struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TypeOfNotice  Category  `json:"typeOfNotice" gorm:"type:varchar(20);not null;index"`
	PublishedDate time.Time `json:"publishedDate" gorm:"not null"`
	StartDate     time.Time `json:"startDate" gorm:"not null"`
	StartTime     string    `json:"startTime" gorm:"type:varchar(10);not null"`
	EndDate       time.Time `json:"endDate" gorm:"not null"`
	EndTime       string    `json:"endTime" gorm:"type:varchar(10);not null"`
	Details       string    `json:"details" gorm:"type:text;not null"`
	ViewPage      string    `json:"viewPage" gorm:"type:varchar(500);not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Notice
func (Notice) TableName() string {
	return "notices"
}

// NoticeRequest is the body of POST /notices.
type NoticeRequest struct {
	TypeOfNotice  string     `json:"typeOfNotice"`
	PublishedDate *time.Time `json:"publishedDate"`
	StartDate     *time.Time `json:"startDate"`
	StartTime     string     `json:"startTime"`
	EndDate       *time.Time `json:"endDate"`
	EndTime       string     `json:"endTime"`
	Details       string     `json:"details"`
	ViewPage      string     `json:"viewPage"`
}
