package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type InvitationService interface {
	Invite(ctx context.Context, holidayID uuid.UUID, inviteeEmail string, requesterID uuid.UUID) error
	Leave(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) error
}

type invitationService struct {
	holidayRepo repository.HolidayRepository
	userRepo    repository.UserRepository
	dispatcher  *Dispatcher
	log         logger.Logger
}

func NewInvitationService(holidayRepo repository.HolidayRepository, userRepo repository.UserRepository, dispatcher *Dispatcher, log logger.Logger) InvitationService {
	return &invitationService{
		holidayRepo: holidayRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		log:         log,
	}
}

// Invite adds a guest by email. The requester must already hold an
// invitation to the holiday; any authenticated stranger being able to
// invite themselves would make the publication flag meaningless.
func (s *invitationService) Invite(ctx context.Context, holidayID uuid.UUID, inviteeEmail string, requesterID uuid.UUID) error {
	invitee, err := s.userRepo.GetByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.NotFound("no user with email %s", inviteeEmail)
		}
		return err
	}

	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return err
	}

	if !domain.CanModify(holiday, requesterID) {
		return errs.Forbidden("you are not a guest of this holiday")
	}

	if holiday.IsGuest(invitee.ID) {
		return errs.Conflict("user is already invited to this holiday")
	}

	invitation := &domain.Invitation{
		UserID:    invitee.ID,
		HolidayID: holidayID,
	}
	if err := s.holidayRepo.CreateInvitation(ctx, invitation); err != nil {
		return err
	}

	s.log.Info("Guest invited", "holiday_id", holidayID, "invitee_id", invitee.ID, "requester_id", requesterID)

	s.dispatcher.Dispatch(
		[]Recipient{{Name: invitee.FullName(), Email: invitee.Email}},
		fmt.Sprintf("You have been invited to %s", holiday.Name),
		fmt.Sprintf("Hello %s,\n\nYou have been invited to the holiday %q (%s to %s). Log in to see the details.",
			invitee.FirstName, holiday.Name, holiday.StartDate, holiday.EndDate),
	)

	return nil
}

// Leave removes the requester's own invitation. Removing the last one
// deletes the holiday and everything it owns.
func (s *invitationService) Leave(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) error {
	remaining, holidayDeleted, err := s.holidayRepo.RemoveInvitation(ctx, holidayID, requesterID)
	if err != nil {
		return err
	}

	if holidayDeleted {
		s.log.Info("Last guest left, holiday deleted", "holiday_id", holidayID, "user_id", requesterID)
	} else {
		s.log.Info("Guest left holiday", "holiday_id", holidayID, "user_id", requesterID, "remaining_guests", remaining)
	}

	return nil
}
