package events

import "time"

const LeaveDecidedTopic = "hr.leave.decision.v1"

// LeaveDecidedEvent carries everything the notification consumer needs to
// compose the decision email without reading the database again.
type LeaveDecidedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveID        string    `json:"leave_id"`
	UserID         string    `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	Decision       string    `json:"decision"`
	DecidedByEmail string    `json:"decided_by_email"`
	OccurredAt     time.Time `json:"occurred_at"`
}
