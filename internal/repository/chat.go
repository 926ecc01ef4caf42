package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"holiday_planner/internal/domain"
	"holiday_planner/pkg/logger"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, message *domain.ChatMessage) error
	// GetRecentMessages returns at most limit messages, oldest first.
	GetRecentMessages(ctx context.Context, holidayID uuid.UUID, limit int) ([]*domain.ChatMessage, error)
}

type chatRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewChatRepository(db *pgxpool.Pool, log logger.Logger) ChatRepository {
	return &chatRepository{db: db, log: log}
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (holiday_id, user_id, content, sent_at, images)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		message.HolidayID, message.UserID, message.Content, message.SentAt.Time, message.Images,
	).Scan(&message.ID)
	if err != nil {
		r.log.Error("Failed to create chat message", "error", err)
		return err
	}

	return nil
}

func (r *chatRepository) GetRecentMessages(ctx context.Context, holidayID uuid.UUID, limit int) ([]*domain.ChatMessage, error) {
	query := `
		SELECT id, holiday_id, user_id, content, sent_at, images
		FROM (
			SELECT id, holiday_id, user_id, content, sent_at, images
			FROM chat_messages
			WHERE holiday_id = $1
			ORDER BY sent_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY sent_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, holidayID, limit)
	if err != nil {
		r.log.Error("Failed to get chat messages", "error", err)
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		message := &domain.ChatMessage{}
		err := rows.Scan(
			&message.ID, &message.HolidayID, &message.UserID,
			&message.Content, &message.SentAt, &message.Images,
		)
		if err != nil {
			r.log.Error("Failed to scan chat message", "error", err)
			return nil, err
		}
		if message.Images == nil {
			message.Images = []string{}
		}
		messages = append(messages, message)
	}

	return messages, nil
}
