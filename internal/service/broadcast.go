package service

import (
	"context"
	"fmt"
	"log"

	"merowoda-service/internal/email/templates"
	"merowoda-service/pkg/models"
)

// BroadcastService fans a staff announcement out to every user subscribed
// to one notice category.
type BroadcastService struct {
	store  Store
	mailer Mailer
}

func NewBroadcastService(store Store, mailer Mailer) *BroadcastService {
	return &BroadcastService{store: store, mailer: mailer}
}

// Broadcast initiates one email per user whose preference for the category
// is true. Sends are independent and best effort: a render failure or send
// failure for one recipient never aborts the rest, and the call returns as
// soon as every send has been initiated. Returns the initiated count.
func (b *BroadcastService) Broadcast(ctx context.Context, category string) (int, error) {
	cat, ok := models.ParseCategory(category)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	prefs, err := b.store.PreferencesByCategory(ctx, cat)
	if err != nil {
		return 0, fmt.Errorf("query %s preferences: %w", cat, err)
	}

	subject := fmt.Sprintf("Important %s Information", cat)
	initiated := 0
	for _, pref := range prefs {
		if pref.User == nil {
			log.Printf("⚠️ Preference %s has no user, skipping", pref.ID)
			continue
		}
		body, err := templates.RenderBroadcastEmail(templates.BroadcastData{
			FirstName: pref.User.FirstName,
			LastName:  pref.User.LastName,
			Category:  string(cat),
		})
		if err != nil {
			log.Printf("⚠️ Broadcast render failed for %s: %v", pref.User.Email, err)
			continue
		}
		b.mailer.SendAsync(pref.User.Email, subject, body)
		initiated++
	}

	log.Printf("📣 Broadcast %s initiated for %d of %d subscribers", cat, initiated, len(prefs))
	return initiated, nil
}
