package store

import (
	"context"

	"merowoda-service/internal/service"
	"merowoda-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryColumns whitelists the preference column per category so the
// broadcast query never interpolates caller input.
var categoryColumns = map[models.Category]string{
	models.CategoryTrainings:  "trainings",
	models.CategoryCampaign:   "campaign",
	models.CategoryGarbage:    "garbage",
	models.CategorySanitation: "sanitation",
}

// GormStore implements service.Store on top of Postgres via GORM.
type GormStore struct {
	db *gorm.DB
}

var _ service.Store = (*GormStore)(nil)

func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) UserByEmailPhone(ctx context.Context, email, phone string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ? AND phone = ?", email, phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *GormStore) SaveUser(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *GormStore) PreferenceByUserID(ctx context.Context, userID uuid.UUID) (*models.NoticePreference, error) {
	var pref models.NoticePreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (s *GormStore) CreatePreference(ctx context.Context, p *models.NoticePreference) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) SavePreference(ctx context.Context, p *models.NoticePreference) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *GormStore) PreferencesByCategory(ctx context.Context, cat models.Category) ([]*models.NoticePreference, error) {
	column, ok := categoryColumns[cat]
	if !ok {
		return nil, gorm.ErrInvalidField
	}
	var prefs []*models.NoticePreference
	err := s.db.WithContext(ctx).
		Where(column+" = ?", true).
		Preload("User").
		Find(&prefs).Error
	return prefs, err
}

func (s *GormStore) CreateDonation(ctx context.Context, d *models.Donation) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *GormStore) DonationsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Donation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var donations []*models.Donation
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&donations).Error
	return donations, err
}

func (s *GormStore) ListByUserID(ctx context.Context, userID uuid.UUID) (*models.DonationList, error) {
	var list models.DonationList
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *GormStore) AllLists(ctx context.Context) ([]*models.DonationList, error) {
	var lists []*models.DonationList
	err := s.db.WithContext(ctx).Preload("User").Find(&lists).Error
	return lists, err
}

func (s *GormStore) CreateList(ctx context.Context, l *models.DonationList) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *GormStore) SaveList(ctx context.Context, l *models.DonationList) error {
	return s.db.WithContext(ctx).Save(l).Error
}

func (s *GormStore) CreateNotice(ctx context.Context, n *models.Notice) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *GormStore) Notices(ctx context.Context, typeOf *models.Category) ([]*models.Notice, error) {
	query := s.db.WithContext(ctx).Order("published_date DESC")
	if typeOf != nil {
		query = query.Where("type_of_notice = ?", *typeOf)
	}
	var notices []*models.Notice
	err := query.Find(&notices).Error
	return notices, err
}

func (s *GormStore) DeleteNotice(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Notice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Transaction runs fn against a store bound to a DB transaction. The email
// dispatch that follows a write is intentionally outside this boundary.
func (s *GormStore) Transaction(ctx context.Context, fn func(service.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
