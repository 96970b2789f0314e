package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"merowoda-service/internal/email/templates"
	"merowoda-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService reconciles a user with their notice preferences.
type SubscriptionService struct {
	store  Store
	mailer Mailer
}

func NewSubscriptionService(store Store, mailer Mailer) *SubscriptionService {
	return &SubscriptionService{store: store, mailer: mailer}
}

// Preferences returns the user matching (email, phone) and their notice
// preference. The preference may be nil when none was ever created.
func (s *SubscriptionService) Preferences(ctx context.Context, email, phone string) (*models.User, *models.NoticePreference, error) {
	user, err := s.store.UserByEmailPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	news, err := s.store.PreferenceByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, nil, nil
		}
		return nil, nil, err
	}
	return user, news, nil
}

// Subscribe creates a user together with their notice preference. An
// existing (email, phone) pair is rejected with ErrAlreadySubscribed; the
// caller is expected to use Edit instead. A welcome email naming the
// selected categories is dispatched after the writes commit.
func (s *SubscriptionService) Subscribe(ctx context.Context, email, phone string, req *models.SubscribeRequest) (*models.User, *models.NoticePreference, error) {
	_, err := s.store.UserByEmailPhone(ctx, email, phone)
	if err == nil {
		return nil, nil, ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Phone:     phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	news := &models.NoticePreference{
		ID:         uuid.New(),
		UserID:     user.ID,
		Trainings:  req.Trainings,
		Campaign:   req.Campaign,
		Garbage:    req.Garbage,
		Sanitation: req.Sanitation,
	}

	err = s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := tx.CreatePreference(ctx, news); err != nil {
			return fmt.Errorf("create preference: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.sendWelcome(user, news)
	return user, news, nil
}

// Edit overwrites the user's name fields and all four category booleans,
// creating the preference record when it does not exist. No email is sent.
func (s *SubscriptionService) Edit(ctx context.Context, email, phone string, req *models.SubscribeRequest) (*models.User, *models.NoticePreference, error) {
	user, err := s.store.UserByEmailPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.UpdatedAt = time.Now()

	news, err := s.store.PreferenceByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		news = &models.NoticePreference{ID: uuid.New(), UserID: user.ID}
	}
	news.Trainings = req.Trainings
	news.Campaign = req.Campaign
	news.Garbage = req.Garbage
	news.Sanitation = req.Sanitation

	err = s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		if err := tx.SavePreference(ctx, news); err != nil {
			return fmt.Errorf("save preference: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, news, nil
}

func (s *SubscriptionService) sendWelcome(user *models.User, news *models.NoticePreference) {
	body, err := templates.RenderWelcomeEmail(templates.WelcomeData{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Categories: news.EnabledCategories(),
	})
	if err != nil {
		log.Printf("⚠️ Welcome email render failed for %s: %v", user.Email, err)
		return
	}
	s.mailer.SendAsync(user.Email, "Welcome to Mero Woda", body)
}
