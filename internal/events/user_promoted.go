package events

import "time"

const UserPromotedTopic = "hr.user.promotion.v1"

type UserPromotedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	UserEmail  string    `json:"user_email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
