package domain

import (
	"github.com/google/uuid"
)

// ChatMessage is an append-only log entry scoped to a holiday. Messages
// are never deleted individually; they go away with the holiday.
type ChatMessage struct {
	ID        int64     `json:"id"`
	HolidayID uuid.UUID `json:"holidayId"`
	UserID    uuid.UUID `json:"userId"`
	Content   string    `json:"content"`
	SentAt    DateTime  `json:"sentAt"`
	Images    []string  `json:"images"`
}

// ChatHistoryLimit caps message retrieval at the most recent entries.
const ChatHistoryLimit = 100
