package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"merowoda-service/pkg/models"
)

func TestSubscribeCreatesUserAndPreference(t *testing.T) {
	fs := newFakeStore()
	mailer := newFakeMailer()
	svc := NewSubscriptionService(fs, mailer)

	req := &models.SubscribeRequest{
		FirstName: "Sita",
		LastName:  "Sharma",
		Trainings: true,
		Garbage:   true,
	}
	user, news, err := svc.Subscribe(context.Background(), "sita@example.com", "9841000000", req)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	if len(fs.users) != 1 {
		t.Fatalf("Expected exactly one user, got %d", len(fs.users))
	}
	if len(fs.prefs) != 1 {
		t.Fatalf("Expected exactly one preference, got %d", len(fs.prefs))
	}
	if user.Email != "sita@example.com" || user.Phone != "9841000000" {
		t.Errorf("Unexpected user identity: %s / %s", user.Email, user.Phone)
	}
	if !news.Trainings || news.Campaign || !news.Garbage || news.Sanitation {
		t.Errorf("Preference booleans do not match request: %+v", news)
	}
	if news.UserID != user.ID {
		t.Errorf("Preference not linked to user: %s != %s", news.UserID, user.ID)
	}
}

func TestSubscribeSendsWelcomeNamingOnlySelectedCategories(t *testing.T) {
	fs := newFakeStore()
	mailer := newFakeMailer()
	svc := NewSubscriptionService(fs, mailer)

	req := &models.SubscribeRequest{FirstName: "Hari", LastName: "KC", Sanitation: true}
	if _, _, err := svc.Subscribe(context.Background(), "hari@example.com", "9841000001", req); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	emails := mailer.sentTo("hari@example.com")
	if len(emails) != 1 {
		t.Fatalf("Expected one welcome email, got %d", len(emails))
	}
	body := emails[0].body
	if !strings.Contains(body, "sanitation") {
		t.Errorf("Welcome email does not name the selected category: %s", body)
	}
	for _, unselected := range []string{"trainings", "campaign", "garbage"} {
		if strings.Contains(body, unselected) {
			t.Errorf("Welcome email names unselected category %q: %s", unselected, body)
		}
	}
}

func TestSubscribeRejectsDuplicate(t *testing.T) {
	fs := newFakeStore()
	mailer := newFakeMailer()
	svc := NewSubscriptionService(fs, mailer)

	req := &models.SubscribeRequest{FirstName: "Gita", LastName: "Rai", Campaign: true}
	if _, _, err := svc.Subscribe(context.Background(), "gita@example.com", "9841000002", req); err != nil {
		t.Fatalf("First subscribe failed: %v", err)
	}

	_, _, err := svc.Subscribe(context.Background(), "gita@example.com", "9841000002", req)
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("Expected ErrAlreadySubscribed, got %v", err)
	}
	if len(fs.users) != 1 {
		t.Errorf("Duplicate subscribe created a second user: %d users", len(fs.users))
	}
}

func TestSubscribeSucceedsWhenDeliveryFails(t *testing.T) {
	fs := newFakeStore()
	mailer := newFakeMailer()
	mailer.failFor["ram@example.com"] = true
	svc := NewSubscriptionService(fs, mailer)

	req := &models.SubscribeRequest{FirstName: "Ram", LastName: "Thapa", Garbage: true}
	if _, _, err := svc.Subscribe(context.Background(), "ram@example.com", "9841000003", req); err != nil {
		t.Fatalf("Subscribe must not fail on delivery failure: %v", err)
	}
	if len(fs.users) != 1 {
		t.Errorf("Expected the user to be persisted despite delivery failure")
	}
}

func TestEditUnknownUserReturnsNotFound(t *testing.T) {
	fs := newFakeStore()
	svc := NewSubscriptionService(fs, newFakeMailer())

	req := &models.SubscribeRequest{FirstName: "Nobody", LastName: "Here"}
	_, _, err := svc.Edit(context.Background(), "missing@example.com", "9800000000", req)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
	if len(fs.users) != 0 || len(fs.prefs) != 0 {
		t.Errorf("Edit on a missing user must not create records")
	}
}

func TestEditOverwritesPreferenceAndName(t *testing.T) {
	fs := newFakeStore()
	mailer := newFakeMailer()
	svc := NewSubscriptionService(fs, mailer)

	create := &models.SubscribeRequest{FirstName: "Maya", LastName: "Gurung", Trainings: true}
	if _, _, err := svc.Subscribe(context.Background(), "maya@example.com", "9841000004", create); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	sentBefore := mailer.sentCount()

	update := &models.SubscribeRequest{FirstName: "Maya", LastName: "Lama", Campaign: true, Sanitation: true}
	user, news, err := svc.Edit(context.Background(), "maya@example.com", "9841000004", update)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if user.LastName != "Lama" {
		t.Errorf("Expected last name overwritten, got %s", user.LastName)
	}
	if news.Trainings || !news.Campaign || news.Garbage || !news.Sanitation {
		t.Errorf("Edit did not overwrite all four booleans: %+v", news)
	}
	if mailer.sentCount() != sentBefore {
		t.Errorf("Edit must not send a notification")
	}
}

func TestEditCreatesPreferenceWhenAbsent(t *testing.T) {
	fs := newFakeStore()
	svc := NewSubscriptionService(fs, newFakeMailer())

	// A crash between the user and preference writes can leave a user with
	// no preference record; edit must repair that.
	seedUser(fs, "bina@example.com", "9841000005", "Bina", "Shrestha")

	update := &models.SubscribeRequest{FirstName: "Bina", LastName: "Shrestha", Garbage: true}
	_, news, err := svc.Edit(context.Background(), "bina@example.com", "9841000005", update)
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if news == nil || !news.Garbage {
		t.Fatalf("Edit must create the preference record when absent: %+v", news)
	}
	if len(fs.prefs) != 1 {
		t.Errorf("Expected one preference record, got %d", len(fs.prefs))
	}
}

func TestPreferencesNotFound(t *testing.T) {
	svc := NewSubscriptionService(newFakeStore(), newFakeMailer())
	_, _, err := svc.Preferences(context.Background(), "ghost@example.com", "9800000001")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}
