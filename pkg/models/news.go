package models

import (
	"time"

	"github.com/google/uuid"
)

// Category names the four notice streams a user can opt into.
type Category string

const (
	CategoryTrainings  Category = "trainings"
	CategoryCampaign   Category = "campaign"
	CategoryGarbage    Category = "garbage"
	CategorySanitation Category = "sanitation"
)

// Categories lists all valid categories in their canonical order.
var Categories = []Category{CategoryTrainings, CategoryCampaign, CategoryGarbage, CategorySanitation}

// ParseCategory normalizes and validates a category name.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryTrainings, CategoryCampaign, CategoryGarbage, CategorySanitation:
		return Category(s), true
	}
	return "", false
}

// NoticePreference ("news") holds the per-user boolean flags for the four
// notice categories. At most one record exists per user.
type NoticePreference struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user" gorm:"type:uuid;not null;uniqueIndex"`
	User       *User     `json:"-" gorm:"foreignKey:UserID"`
	Trainings  bool      `json:"trainings" gorm:"not null;default:false"`
	Campaign   bool      `json:"campaign" gorm:"not null;default:false"`
	Garbage    bool      `json:"garbage" gorm:"not null;default:false"`
	Sanitation bool      `json:"sanitation" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName specifies the table name for NoticePreference
func (NoticePreference) TableName() string {
	return "notice_preferences"
}

// Enabled reports whether the flag for the given category is set.
func (p *NoticePreference) Enabled(cat Category) bool {
	switch cat {
	case CategoryTrainings:
		return p.Trainings
	case CategoryCampaign:
		return p.Campaign
	case CategoryGarbage:
		return p.Garbage
	case CategorySanitation:
		return p.Sanitation
	}
	return false
}

// EnabledCategories returns the names of the categories the user opted into,
// in canonical order.
func (p *NoticePreference) EnabledCategories() []string {
	var out []string
	for _, cat := range Categories {
		if p.Enabled(cat) {
			out = append(out, string(cat))
		}
	}
	return out
}

// SubscribeRequest is the body of POST/PUT /user-messages.
type SubscribeRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Trainings  bool   `json:"trainings"`
	Campaign   bool   `json:"campaign"`
	Garbage    bool   `json:"garbage"`
	Sanitation bool   `json:"sanitation"`
}
