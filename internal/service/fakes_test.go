package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	errs "holiday_planner/pkg/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}

// recordingNotifier captures dispatched mail for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	sends []recordedSend
}

type recordedSend struct {
	To      []Recipient
	Subject string
	Body    string
}

func (n *recordingNotifier) Send(ctx context.Context, to []Recipient, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends = append(n.sends, recordedSend{To: to, Subject: subject, Body: body})
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sends)
}

// fakeHolidayRepo keeps holidays and their invitations in memory with the
// same cascade semantics as the SQL implementation.
type fakeHolidayRepo struct {
	holidays map[uuid.UUID]*domain.Holiday
	guests   map[uuid.UUID]*domain.Guest
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{
		holidays: make(map[uuid.UUID]*domain.Holiday),
		guests:   make(map[uuid.UUID]*domain.Guest),
	}
}

func (r *fakeHolidayRepo) Create(ctx context.Context, holiday *domain.Holiday, creatorID uuid.UUID) error {
	copy := *holiday
	copy.Invitations = []domain.Invitation{{UserID: creatorID, HolidayID: holiday.ID}}
	r.holidays[holiday.ID] = &copy
	return nil
}

func (r *fakeHolidayRepo) GetWithInvitations(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	h, ok := r.holidays[id]
	if !ok {
		return nil, errs.NotFound("holiday not found")
	}
	copy := *h
	return &copy, nil
}

func (r *fakeHolidayRepo) GetWithInvitationsAndActivities(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	return r.GetWithInvitations(ctx, id)
}

func (r *fakeHolidayRepo) ListPublished(ctx context.Context, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	var out []*domain.Holiday
	for _, h := range r.holidays {
		if h.Published {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) ListInvited(ctx context.Context, userID uuid.UUID, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	var out []*domain.Holiday
	for _, h := range r.holidays {
		if h.IsGuest(userID) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) Update(ctx context.Context, holiday *domain.Holiday) error {
	existing, ok := r.holidays[holiday.ID]
	if !ok {
		return errs.NotFound("holiday not found")
	}
	copy := *holiday
	copy.Invitations = existing.Invitations
	r.holidays[holiday.ID] = &copy
	return nil
}

func (r *fakeHolidayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.holidays[id]; !ok {
		return errs.NotFound("holiday not found")
	}
	delete(r.holidays, id)
	return nil
}

func (r *fakeHolidayRepo) CreateInvitation(ctx context.Context, invitation *domain.Invitation) error {
	h, ok := r.holidays[invitation.HolidayID]
	if !ok {
		return errs.NotFound("holiday not found")
	}
	if h.IsGuest(invitation.UserID) {
		return errs.Conflict("user is already invited to this holiday")
	}
	h.Invitations = append(h.Invitations, *invitation)
	return nil
}

func (r *fakeHolidayRepo) RemoveInvitation(ctx context.Context, holidayID, userID uuid.UUID) (int64, bool, error) {
	h, ok := r.holidays[holidayID]
	if !ok {
		return 0, false, errs.NotFound("holiday not found")
	}
	idx := -1
	for i, inv := range h.Invitations {
		if inv.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, false, errs.NotFound("invitation not found")
	}
	h.Invitations = append(h.Invitations[:idx], h.Invitations[idx+1:]...)
	remaining := int64(len(h.Invitations))
	if remaining == 0 {
		delete(r.holidays, holidayID)
		return 0, true, nil
	}
	return remaining, false, nil
}

func (r *fakeHolidayRepo) ListGuests(ctx context.Context, holidayID uuid.UUID) ([]*domain.Guest, error) {
	h, ok := r.holidays[holidayID]
	if !ok {
		return nil, errs.NotFound("holiday not found")
	}
	var out []*domain.Guest
	for _, inv := range h.Invitations {
		if g, ok := r.guests[inv.UserID]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return errs.Conflict("email already registered")
	}
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, errs.NotFound("user not found")
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, errs.NotFound("user not found")
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	stored := *user
	r.byEmail[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) CreateSession(ctx context.Context, session *domain.UserSession) error {
	return nil
}

func (r *fakeUserRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*domain.UserSession, error) {
	return nil, errs.NotFound("session not found")
}

func (r *fakeUserRepo) RevokeSession(ctx context.Context, sessionID uuid.UUID, reason string) error {
	return nil
}

type fakeActivityRepo struct {
	activities map[uuid.UUID]*domain.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[uuid.UUID]*domain.Activity)}
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, errs.NotFound("activity not found")
	}
	return a, nil
}

func (r *fakeActivityRepo) ListByHoliday(ctx context.Context, holidayID uuid.UUID) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, a := range r.activities {
		if a.HolidayID == holidayID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) Update(ctx context.Context, activity *domain.Activity) error {
	if _, ok := r.activities[activity.ID]; !ok {
		return errs.NotFound("activity not found")
	}
	r.activities[activity.ID] = activity
	return nil
}

func (r *fakeActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.activities[id]; !ok {
		return errs.NotFound("activity not found")
	}
	delete(r.activities, id)
	return nil
}

type fakeChatRepo struct {
	messages []*domain.ChatMessage
	nextID   int64
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{}
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	r.nextID++
	message.ID = r.nextID
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) GetRecentMessages(ctx context.Context, holidayID uuid.UUID, limit int) ([]*domain.ChatMessage, error) {
	var matching []*domain.ChatMessage
	for _, m := range r.messages {
		if m.HolidayID == holidayID {
			matching = append(matching, m)
		}
	}
	if len(matching) > limit {
		matching = matching[len(matching)-limit:]
	}
	return matching, nil
}
