package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Donation is an immutable monetary event. Amounts are stored as integer
// cents so summation never loses precision.
type Donation struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AmountCents int64     `json:"amountCents" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for Donation
func (Donation) TableName() string {
	return "donations"
}

// DonationList is the per-user append-only ledger. DonationIDs is an ordered
// jsonb array of donation UUIDs; insertion order is chronological.
type DonationList struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `json:"user" gorm:"type:uuid;not null;uniqueIndex"`
	User        *User          `json:"-" gorm:"foreignKey:UserID"`
	DonationIDs datatypes.JSON `json:"donations" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for DonationList
func (DonationList) TableName() string {
	return "donation_lists"
}

// IDs decodes the ordered donation references.
func (l *DonationList) IDs() ([]uuid.UUID, error) {
	if len(l.DonationIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(l.DonationIDs, &ids); err != nil {
		return nil, fmt.Errorf("decode donation list %s: %w", l.ID, err)
	}
	return ids, nil
}

// Append adds a donation reference at the end of the list.
func (l *DonationList) Append(id uuid.UUID) error {
	ids, err := l.IDs()
	if err != nil {
		return err
	}
	ids = append(ids, id)
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode donation list %s: %w", l.ID, err)
	}
	l.DonationIDs = datatypes.JSON(raw)
	return nil
}

// DonateRequest is the body of POST /donate. Amount arrives as a JSON number
// or decimal string and is converted to cents before it touches the store.
type DonateRequest struct {
	Amount    json.Number `json:"amount"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Phone     string      `json:"phone"`
}

// DonationHistory is the per-user query result: ordered amounts plus their
// fixed-point sum, both formatted as decimal strings.
type DonationHistory struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Donations []string `json:"donations"`
	Total     string   `json:"total"`
}

// DonationSummary is one row of the staff-only aggregate query.
type DonationSummary struct {
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Donations []string `json:"donations"`
	Total     string   `json:"total"`
}
