package service

import (
	"context"

	"github.com/google/uuid"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/repository"
	"holiday_planner/pkg/logger"
)

type StatsService interface {
	GetUserStatistics(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	log       logger.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, log logger.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		log:       log,
	}
}

func (s *statsService) GetUserStatistics(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error) {
	return s.statsRepo.GetUserStatistics(ctx, userID)
}
