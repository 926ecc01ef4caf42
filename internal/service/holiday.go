package service

import (
	"context"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type HolidayService interface {
	Create(ctx context.Context, details domain.HolidayDetails, creatorID uuid.UUID) (*domain.Holiday, error)
	Get(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*domain.Holiday, []*domain.Guest, error)
	ListPublished(ctx context.Context, filter domain.HolidayFilter) ([]*domain.Holiday, error)
	ListInvited(ctx context.Context, userID uuid.UUID, filter domain.HolidayFilter) ([]*domain.Holiday, error)
	Update(ctx context.Context, id uuid.UUID, details domain.HolidayDetails, requesterID uuid.UUID) (*domain.Holiday, error)
	Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
}

type holidayService struct {
	holidayRepo repository.HolidayRepository
	log         logger.Logger
}

func NewHolidayService(holidayRepo repository.HolidayRepository, log logger.Logger) HolidayService {
	return &holidayService{
		holidayRepo: holidayRepo,
		log:         log,
	}
}

func (s *holidayService) Create(ctx context.Context, details domain.HolidayDetails, creatorID uuid.UUID) (*domain.Holiday, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	holiday := &domain.Holiday{
		ID:          uuid.New(),
		Name:        details.Name,
		Description: details.Description,
		StartDate:   details.StartDate,
		EndDate:     details.EndDate,
		Address:     details.Address,
		Published:   details.Published,
	}

	// Creator invitation is written in the same transaction, so there is
	// never a holiday without at least one guest.
	if err := s.holidayRepo.Create(ctx, holiday, creatorID); err != nil {
		s.log.Error("Failed to create holiday", "error", err)
		return nil, err
	}

	s.log.Info("Holiday created", "holiday_id", holiday.ID, "creator_id", creatorID)
	return holiday, nil
}

func (s *holidayService) Get(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*domain.Holiday, []*domain.Guest, error) {
	holiday, err := s.holidayRepo.GetWithInvitationsAndActivities(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !domain.CanRead(holiday, requesterID) {
		return nil, nil, errs.Forbidden("you are not a guest of this holiday")
	}

	guests, err := s.holidayRepo.ListGuests(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return holiday, guests, nil
}

func (s *holidayService) ListPublished(ctx context.Context, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	holidays, err := s.holidayRepo.ListPublished(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list published holidays", "error", err)
		return nil, errs.NotFound("no published holidays available")
	}
	return holidays, nil
}

func (s *holidayService) ListInvited(ctx context.Context, userID uuid.UUID, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	return s.holidayRepo.ListInvited(ctx, userID, filter)
}

func (s *holidayService) Update(ctx context.Context, id uuid.UUID, details domain.HolidayDetails, requesterID uuid.UUID) (*domain.Holiday, error) {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}

	holiday.Name = details.Name
	holiday.Description = details.Description
	holiday.StartDate = details.StartDate
	holiday.EndDate = details.EndDate
	holiday.Address = details.Address
	holiday.Published = details.Published

	if err := s.holidayRepo.Update(ctx, holiday); err != nil {
		return nil, err
	}

	return holiday, nil
}

func (s *holidayService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanModify(holiday, requesterID) {
		return errs.Forbidden("you are not a guest of this holiday")
	}

	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Holiday deleted", "holiday_id", id, "requester_id", requesterID)
	return nil
}
