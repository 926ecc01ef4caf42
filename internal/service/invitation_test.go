package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday_planner/internal/domain"
	errs "holiday_planner/pkg/errors"
)

func testUser(email string) *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}
}

func inviteFixture(t *testing.T, published bool) (*fakeHolidayRepo, *fakeUserRepo, InvitationService, *domain.Holiday, *domain.User) {
	t.Helper()

	creator := testUser("creator@example.com")
	holidayRepo := newFakeHolidayRepo()
	userRepo := newFakeUserRepo(creator)
	dispatcher := NewDispatcher(&recordingNotifier{}, nopLogger{})
	svc := NewInvitationService(holidayRepo, userRepo, dispatcher, nopLogger{})

	holidaySvc := NewHolidayService(holidayRepo, nopLogger{})
	holiday, err := holidaySvc.Create(context.Background(), testDetails(published), creator.ID)
	require.NoError(t, err)

	return holidayRepo, userRepo, svc, holiday, creator
}

func TestInvitationService_Invite(t *testing.T) {
	holidayRepo, userRepo, svc, holiday, creator := inviteFixture(t, false)

	invitee := testUser("friend@example.com")
	require.NoError(t, userRepo.Create(context.Background(), invitee))

	err := svc.Invite(context.Background(), holiday.ID, invitee.Email, creator.ID)
	require.NoError(t, err)

	stored, err := holidayRepo.GetWithInvitations(context.Background(), holiday.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsGuest(invitee.ID))
}

func TestInvitationService_Invite_UnknownEmail(t *testing.T) {
	_, _, svc, holiday, creator := inviteFixture(t, false)

	err := svc.Invite(context.Background(), holiday.ID, "nobody@example.com", creator.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorContains(t, err, "nobody@example.com")
}

func TestInvitationService_Invite_RequesterMustBeGuest(t *testing.T) {
	_, userRepo, svc, holiday, _ := inviteFixture(t, true)

	invitee := testUser("friend@example.com")
	require.NoError(t, userRepo.Create(context.Background(), invitee))

	stranger := uuid.New()
	err := svc.Invite(context.Background(), holiday.ID, invitee.Email, stranger)
	assert.ErrorIs(t, err, errs.ErrForbidden, "even on published holidays only guests may invite")
}

func TestInvitationService_Invite_Duplicate(t *testing.T) {
	_, _, svc, holiday, creator := inviteFixture(t, false)

	err := svc.Invite(context.Background(), holiday.ID, creator.Email, creator.ID)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestInvitationService_Leave(t *testing.T) {
	holidayRepo, userRepo, svc, holiday, creator := inviteFixture(t, false)

	invitee := testUser("friend@example.com")
	require.NoError(t, userRepo.Create(context.Background(), invitee))
	require.NoError(t, svc.Invite(context.Background(), holiday.ID, invitee.Email, creator.ID))

	require.NoError(t, svc.Leave(context.Background(), holiday.ID, invitee.ID))

	stored, err := holidayRepo.GetWithInvitations(context.Background(), holiday.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsGuest(invitee.ID))
	assert.True(t, stored.IsGuest(creator.ID))
}

func TestInvitationService_Leave_LastGuestDeletesHoliday(t *testing.T) {
	holidayRepo, _, svc, holiday, creator := inviteFixture(t, false)

	require.NoError(t, svc.Leave(context.Background(), holiday.ID, creator.ID))

	_, err := holidayRepo.GetWithInvitations(context.Background(), holiday.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound, "a holiday cannot outlive its last guest")
}

func TestInvitationService_Leave_NotAGuest(t *testing.T) {
	_, _, svc, holiday, _ := inviteFixture(t, false)

	err := svc.Leave(context.Background(), holiday.ID, uuid.New())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
