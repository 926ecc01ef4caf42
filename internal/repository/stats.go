package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"holiday_planner/internal/domain"
	"holiday_planner/pkg/logger"
)

type StatsRepository interface {
	GetUserStatistics(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error)
}

type statsRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewStatsRepository(db *pgxpool.Pool, log logger.Logger) StatsRepository {
	return &statsRepository{db: db, log: log}
}

func (r *statsRepository) GetUserStatistics(ctx context.Context, userID uuid.UUID) (*domain.UserStatistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM invitations WHERE user_id = $1),
			(SELECT COUNT(*) FROM invitations i
			    JOIN holidays h ON h.id = i.holiday_id
			    WHERE i.user_id = $1 AND h.start_date > NOW()),
			(SELECT COUNT(*) FROM activities a
			    WHERE a.holiday_id IN (SELECT holiday_id FROM invitations WHERE user_id = $1)),
			(SELECT COUNT(*) FROM chat_messages WHERE user_id = $1)
	`

	stats := &domain.UserStatistics{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.HolidayCount, &stats.UpcomingHolidayCount,
		&stats.ActivityCount, &stats.MessageCount,
	)
	if err != nil {
		r.log.Error("Failed to get user statistics", "error", err)
		return nil, err
	}

	return stats, nil
}
