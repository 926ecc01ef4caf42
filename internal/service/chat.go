package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type ChatService interface {
	SendMessage(ctx context.Context, holidayID uuid.UUID, userID uuid.UUID, content string, images []string) (*domain.ChatMessage, error)
	// GetMessages returns the most recent messages, capped at
	// domain.ChatHistoryLimit, oldest first.
	GetMessages(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) ([]*domain.ChatMessage, error)
	CanJoinStream(ctx context.Context, holidayID uuid.UUID, userID uuid.UUID) error
}

type chatService struct {
	chatRepo    repository.ChatRepository
	holidayRepo repository.HolidayRepository
	hub         *ChatHub
	log         logger.Logger
}

func NewChatService(chatRepo repository.ChatRepository, holidayRepo repository.HolidayRepository, hub *ChatHub, log logger.Logger) ChatService {
	return &chatService{
		chatRepo:    chatRepo,
		holidayRepo: holidayRepo,
		hub:         hub,
		log:         log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, holidayID uuid.UUID, userID uuid.UUID, content string, images []string) (*domain.ChatMessage, error) {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanModify(holiday, userID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	if strings.TrimSpace(content) == "" {
		return nil, errs.Validation("message content is required")
	}
	if images == nil {
		images = []string{}
	}

	message := &domain.ChatMessage{
		HolidayID: holidayID,
		UserID:    userID,
		Content:   content,
		SentAt:    domain.NewDateTime(time.Now()),
		Images:    images,
	}

	if err := s.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	// Fan-out to live subscribers happens after the commit and cannot
	// fail the send.
	s.hub.Broadcast(message)

	return message, nil
}

func (s *chatService) GetMessages(ctx context.Context, holidayID uuid.UUID, requesterID uuid.UUID) ([]*domain.ChatMessage, error) {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return nil, err
	}

	if !domain.CanRead(holiday, requesterID) {
		return nil, errs.Forbidden("you are not a guest of this holiday")
	}

	return s.chatRepo.GetRecentMessages(ctx, holidayID, domain.ChatHistoryLimit)
}

// CanJoinStream applies the read guard for websocket subscriptions.
func (s *chatService) CanJoinStream(ctx context.Context, holidayID uuid.UUID, userID uuid.UUID) error {
	holiday, err := s.holidayRepo.GetWithInvitations(ctx, holidayID)
	if err != nil {
		return err
	}

	if !domain.CanRead(holiday, userID) {
		return errs.Forbidden("you are not a guest of this holiday")
	}

	return nil
}
