package service

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"holiday_planner/internal/domain"
	"holiday_planner/pkg/logger"
)

// ChatHub fans newly sent messages out to websocket subscribers, grouped
// per holiday. Broadcast is best-effort: a dead connection is dropped,
// never retried, and never affects the stored message.
type ChatHub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*websocket.Conn]bool
	log   logger.Logger
}

func NewChatHub(log logger.Logger) *ChatHub {
	return &ChatHub{
		rooms: make(map[uuid.UUID]map[*websocket.Conn]bool),
		log:   log,
	}
}

func (h *ChatHub) Subscribe(holidayID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[holidayID] == nil {
		h.rooms[holidayID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[holidayID][conn] = true
}

func (h *ChatHub) Unsubscribe(holidayID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs := h.rooms[holidayID]; subs != nil {
		delete(subs, conn)
		if len(subs) == 0 {
			delete(h.rooms, holidayID)
		}
	}
}

func (h *ChatHub) Broadcast(message *domain.ChatMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		h.log.Error("Failed to marshal chat broadcast", "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[message.HolidayID]))
	for conn := range h.rooms[message.HolidayID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warn("Dropping dead chat subscriber", "holiday_id", message.HolidayID, "error", err)
			h.Unsubscribe(message.HolidayID, conn)
			conn.Close()
		}
	}
}
