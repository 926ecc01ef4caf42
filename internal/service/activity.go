package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type ActivityService interface {
	Create(ctx context.Context, holidayID uuid.UUID, details domain.ActivityDetails, requesterID uuid.UUID) (*domain.Activity, error)
	Get(ctx context.Context, activityID uuid.UUID, requesterID uuid.UUID) (*domain.Activity, error)
	ListForHoliday(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) ([]*domain.Activity, error)
	Update(ctx context.Context, activityID uuid.UUID, details domain.ActivityDetails, requesterID uuid.UUID) (*domain.Activity, error)
	Delete(ctx context.Context, activityID uuid.UUID, requesterID uuid.UUID) error
}

type activityService struct {
	activityRepo repository.ActivityRepository
	holidayRepo  repository.HolidayRepository
	dispatcher   *Dispatcher
	log          logger.Logger
}

func NewActivityService(activityRepo repository.ActivityRepository, holidayRepo repository.HolidayRepository, dispatcher *Dispatcher, log logger.Logger) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		holidayRepo:  holidayRepo,
		dispatcher:   dispatcher,
		log:          log,
	}
}

func (s *activityService) Create(ctx context.Context, holidayID uuid.UUID, details domain.ActivityDetails, requesterID uuid.UUID) (*domain.Activity, error) {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}

	activity := &domain.Activity{
		ID:          uuid.New(),
		HolidayID:   holidayID,
		Name:        details.Name,
		Description: details.Description,
		StartDate:   details.StartDate,
		EndDate:     details.EndDate,
		Address:     details.Address,
		Category:    details.Category,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	s.log.Info("Activity created", "activity_id", activity.ID, "holiday_id", holidayID, "requester_id", requesterID)
	s.notifyGuests(ctx, holiday, activity)

	return activity, nil
}

// notifyGuests emails every invited user about the new activity. Loading
// the recipient list failing only costs the notification, not the create.
func (s *activityService) notifyGuests(ctx context.Context, holiday *domain.Holiday, activity *domain.Activity) {
	guests, err := s.holidayRepo.ListGuests(ctx, holiday.ID)
	if err != nil {
		s.log.Error("Failed to load guests for activity notification", "holiday_id", holiday.ID, "error", err)
		return
	}

	recipients := make([]Recipient, 0, len(guests))
	for _, g := range guests {
		recipients = append(recipients, Recipient{Name: g.FirstName + " " + g.LastName, Email: g.Email})
	}

	s.dispatcher.Dispatch(
		recipients,
		fmt.Sprintf("New activity in %s", holiday.Name),
		fmt.Sprintf("The activity %q (%s) was added to the holiday %q, starting %s.",
			activity.Name, activity.Category, holiday.Name, activity.StartDate),
	)
}

func (s *activityService) Get(ctx context.Context, activityID uuid.UUID, requesterID uuid.UUID) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	holiday, err := s.holidayRepo.GetWithInvitations(ctx, activity.HolidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanRead(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	return activity, nil
}

func (s *activityService) ListForHoliday(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) ([]*domain.Activity, error) {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanRead(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	return s.activityRepo.ListByHoliday(ctx, holidayID)
}

func (s *activityService) Update(ctx context.Context, activityID uuid.UUID, details domain.ActivityDetails, requesterID uuid.UUID) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	holiday, err := s.holidayRepo.GetWithInvitations(ctx, activity.HolidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}

	activity.Name = details.Name
	activity.Description = details.Description
	activity.StartDate = details.StartDate
	activity.EndDate = details.EndDate
	activity.Address = details.Address
	activity.Category = details.Category

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, activityID uuid.UUID, requesterID uuid.UUID) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}

	holiday, err := s.holidayRepo.GetWithInvitations(ctx, activity.HolidayID)
	if err != nil {
		return err
	}

	if !domain.CanModify(holiday, requesterID) {
		return errs.Forbidden("you are not a guest of this holiday")
	}

	return s.activityRepo.Delete(ctx, activityID)
}
