package service

import "errors"

var (
	// ErrUserNotFound means no user matched the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadySubscribed means a subscribe attempt hit an existing
	// (email, phone) pair; the caller should use the edit endpoint.
	ErrAlreadySubscribed = errors.New("user already subscribed")
	// ErrDonationListNotFound means the user exists but has never donated.
	ErrDonationListNotFound = errors.New("donation list not found")
	// ErrNoticeNotFound means no announcement matched the given id.
	ErrNoticeNotFound = errors.New("notice not found")
	// ErrUnknownCategory means the category is not one of the four notice
	// streams.
	ErrUnknownCategory = errors.New("unknown notice category")
	// ErrInvalidAmount wraps donation amounts that fail fixed-point parsing.
	ErrInvalidAmount = errors.New("invalid donation amount")
)
