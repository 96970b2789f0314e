package service

import (
	"context"
	"sync"

	"merowoda-service/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	users     map[uuid.UUID]*models.User
	prefs     map[uuid.UUID]*models.NoticePreference // keyed by user ID
	donations map[uuid.UUID]*models.Donation
	lists     map[uuid.UUID]*models.DonationList // keyed by user ID
	notices   map[uuid.UUID]*models.Notice
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[uuid.UUID]*models.User),
		prefs:     make(map[uuid.UUID]*models.NoticePreference),
		donations: make(map[uuid.UUID]*models.Donation),
		lists:     make(map[uuid.UUID]*models.DonationList),
		notices:   make(map[uuid.UUID]*models.Notice),
	}
}

func (f *fakeStore) UserByEmailPhone(_ context.Context, email, phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) SaveUser(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) PreferenceByUserID(_ context.Context, userID uuid.UUID) (*models.NoticePreference, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeStore) CreatePreference(_ context.Context, p *models.NoticePreference) error {
	f.prefs[p.UserID] = p
	return nil
}

func (f *fakeStore) SavePreference(_ context.Context, p *models.NoticePreference) error {
	f.prefs[p.UserID] = p
	return nil
}

func (f *fakeStore) PreferencesByCategory(_ context.Context, cat models.Category) ([]*models.NoticePreference, error) {
	var out []*models.NoticePreference
	for _, p := range f.prefs {
		if p.Enabled(cat) {
			withUser := *p
			withUser.User = f.users[p.UserID]
			out = append(out, &withUser)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateDonation(_ context.Context, d *models.Donation) error {
	f.donations[d.ID] = d
	return nil
}

func (f *fakeStore) DonationsByIDs(_ context.Context, ids []uuid.UUID) ([]*models.Donation, error) {
	var out []*models.Donation
	for _, id := range ids {
		if d, ok := f.donations[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByUserID(_ context.Context, userID uuid.UUID) (*models.DonationList, error) {
	l, ok := f.lists[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeStore) AllLists(_ context.Context) ([]*models.DonationList, error) {
	var out []*models.DonationList
	for _, l := range f.lists {
		withUser := *l
		withUser.User = f.users[l.UserID]
		out = append(out, &withUser)
	}
	return out, nil
}

func (f *fakeStore) CreateList(_ context.Context, l *models.DonationList) error {
	f.lists[l.UserID] = l
	return nil
}

func (f *fakeStore) SaveList(_ context.Context, l *models.DonationList) error {
	f.lists[l.UserID] = l
	return nil
}

func (f *fakeStore) CreateNotice(_ context.Context, n *models.Notice) error {
	f.notices[n.ID] = n
	return nil
}

func (f *fakeStore) Notices(_ context.Context, typeOf *models.Category) ([]*models.Notice, error) {
	var out []*models.Notice
	for _, n := range f.notices {
		if typeOf == nil || n.TypeOfNotice == *typeOf {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteNotice(_ context.Context, id uuid.UUID) error {
	if _, ok := f.notices[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.notices, id)
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, fn func(Store) error) error {
	return fn(f)
}

// seedUser inserts a user directly, bypassing the services.
func seedUser(f *fakeStore, email, phone, firstName, lastName string) *models.User {
	u := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	}
	f.users[u.ID] = u
	return u
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

// fakeMailer records initiated sends. Recipients listed in failFor fail at
// delivery time, which the gateway swallows, so the send is still recorded
// as initiated.
type fakeMailer struct {
	mu       sync.Mutex
	sent     []sentEmail
	failFor  map[string]bool
	failures int
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failFor: make(map[string]bool)}
}

func (m *fakeMailer) SendAsync(to, subject, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: body})
	if m.failFor[to] {
		m.failures++
	}
}

func (m *fakeMailer) sentTo(to string) []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentEmail
	for _, e := range m.sent {
		if e.to == to {
			out = append(out, e)
		}
	}
	return out
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
