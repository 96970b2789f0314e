package service

import (
	"context"

	"merowoda-service/pkg/models"

	"github.com/google/uuid"
)

// Store is the persistence capability the services are built against.
// Lookups report a missing record with gorm.ErrRecordNotFound. Transaction
// groups multi-record writes into one logical transaction so a
// transactional store can be swapped in without changing call sites.
type Store interface {
	UserByEmailPhone(ctx context.Context, email, phone string) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	SaveUser(ctx context.Context, u *models.User) error

	PreferenceByUserID(ctx context.Context, userID uuid.UUID) (*models.NoticePreference, error)
	CreatePreference(ctx context.Context, p *models.NoticePreference) error
	SavePreference(ctx context.Context, p *models.NoticePreference) error
	PreferencesByCategory(ctx context.Context, cat models.Category) ([]*models.NoticePreference, error)

	CreateDonation(ctx context.Context, d *models.Donation) error
	DonationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Donation, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) (*models.DonationList, error)
	AllLists(ctx context.Context) ([]*models.DonationList, error)
	CreateList(ctx context.Context, l *models.DonationList) error
	SaveList(ctx context.Context, l *models.DonationList) error

	CreateNotice(ctx context.Context, n *models.Notice) error
	Notices(ctx context.Context, typeOf *models.Category) ([]*models.Notice, error)
	DeleteNotice(ctx context.Context, id uuid.UUID) error

	Transaction(ctx context.Context, fn func(Store) error) error
}

// Mailer is the fire-and-forget notification gateway capability.
type Mailer interface {
	SendAsync(to, subject, htmlBody string)
}
