package models

import "time"

// Типы событий уведомлений
const (
	EventOrderPlaced    = "order_placed"
	EventStatusChanged  = "status_changed"
	EventOrderReady     = "order_ready"
	EventStampEarned    = "stamp_earned"
	EventRewardEarned   = "reward_earned"
	EventReviewReceived = "review_received"
)

// Event - событие для клиентской части (тосты и уведомление о готовности)
type Event struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id,omitempty"`
	Message   string    `json:"message"`
	Stamps    int       `json:"stamps,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
