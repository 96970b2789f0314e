package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"merowoda-service/internal/email/templates"
	"merowoda-service/internal/money"
	"merowoda-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationService records donations and computes per-user and site-wide
// totals. The ledger is append-only; totals are computed on read.
type DonationService struct {
	store  Store
	mailer Mailer
}

func NewDonationService(store Store, mailer Mailer) *DonationService {
	return &DonationService{store: store, mailer: mailer}
}

// Donate records one donation for the user with the given email, creating
// the user (with an all-false notice preference) and the donation list when
// absent. The acknowledgment email is dispatched only after the store
// writes complete; a duplicate submission produces a second donation.
func (d *DonationService) Donate(ctx context.Context, email string, req *models.DonateRequest) error {
	cents, err := money.ParseCents(req.Amount.String())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	user, err := d.store.UserByEmail(ctx, email)
	newUser := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		newUser = true
		user = &models.User{
			ID:        uuid.New(),
			Email:     email,
			Phone:     req.Phone,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		news := &models.NoticePreference{ID: uuid.New(), UserID: user.ID}
		err = d.store.Transaction(ctx, func(tx Store) error {
			if err := tx.CreateUser(ctx, user); err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			if err := tx.CreatePreference(ctx, news); err != nil {
				return fmt.Errorf("create preference: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	donation := &models.Donation{ID: uuid.New(), AmountCents: cents}

	list, err := d.store.ListByUserID(ctx, user.ID)
	createList := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		createList = true
		list = &models.DonationList{ID: uuid.New(), UserID: user.ID}
	}
	if err := list.Append(donation.ID); err != nil {
		return err
	}

	err = d.store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateDonation(ctx, donation); err != nil {
			return fmt.Errorf("create donation: %w", err)
		}
		if createList {
			if err := tx.CreateList(ctx, list); err != nil {
				return fmt.Errorf("create donation list: %w", err)
			}
			return nil
		}
		if err := tx.SaveList(ctx, list); err != nil {
			return fmt.Errorf("save donation list: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.sendThanks(user, cents, newUser)
	return nil
}

// History returns the ordered donation amounts and their sum for one user.
// A user without a donation list is a not-found, never an empty list.
func (d *DonationService) History(ctx context.Context, email string) (*models.DonationHistory, error) {
	user, err := d.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	list, err := d.store.ListByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationListNotFound
		}
		return nil, err
	}
	amounts, total, err := d.resolveAmounts(ctx, list)
	if err != nil {
		return nil, err
	}
	return &models.DonationHistory{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Donations: amounts,
		Total:     money.FormatCents(total),
	}, nil
}

// All returns one summary per user with a donation list: identity fields,
// the ordered amounts, and the per-user total. Staff only.
func (d *DonationService) All(ctx context.Context) ([]*models.DonationSummary, error) {
	lists, err := d.store.AllLists(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]*models.DonationSummary, 0, len(lists))
	for _, list := range lists {
		if list.User == nil {
			log.Printf("⚠️ Donation list %s has no user, skipping", list.ID)
			continue
		}
		amounts, total, err := d.resolveAmounts(ctx, list)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &models.DonationSummary{
			Email:     list.User.Email,
			Phone:     list.User.Phone,
			FirstName: list.User.FirstName,
			LastName:  list.User.LastName,
			Donations: amounts,
			Total:     money.FormatCents(total),
		})
	}
	return summaries, nil
}

// resolveAmounts joins the list's donation references to donation records,
// preserving list order, and sums the amounts in cents.
func (d *DonationService) resolveAmounts(ctx context.Context, list *models.DonationList) ([]string, int64, error) {
	ids, err := list.IDs()
	if err != nil {
		return nil, 0, err
	}
	donations, err := d.store.DonationsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uuid.UUID]*models.Donation, len(donations))
	for _, donation := range donations {
		byID[donation.ID] = donation
	}
	amounts := make([]string, 0, len(ids))
	var total int64
	for _, id := range ids {
		donation, ok := byID[id]
		if !ok {
			log.Printf("⚠️ Donation %s referenced by list %s is missing", id, list.ID)
			continue
		}
		amounts = append(amounts, money.FormatCents(donation.AmountCents))
		total += donation.AmountCents
	}
	return amounts, total, nil
}

func (d *DonationService) sendThanks(user *models.User, cents int64, newUser bool) {
	data := templates.DonationData{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Amount:    money.FormatCents(cents),
	}
	var body string
	var err error
	subject := "Thank You for Your Donation"
	if newUser {
		body, err = templates.RenderDonationWelcomeEmail(data)
		subject = "Thank You — Subscribe to Mero Woda Notices"
	} else {
		body, err = templates.RenderDonationThanksEmail(data)
	}
	if err != nil {
		log.Printf("⚠️ Donation email render failed for %s: %v", user.Email, err)
		return
	}
	d.mailer.SendAsync(user.Email, subject, body)
}
