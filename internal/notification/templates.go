package notification

import (
	"fmt"

	"github.com/pareverse/hrms/internal/events"
)

// Subjects and bodies are fixed strings the presentation layer and the
// employees' inboxes already know; do not reword them casually.
const (
	SubjectLeaveApproved = "Your Leave Approved!"
	SubjectLeaveRejected = "Your Leave is Rejected!"
	SubjectUserPromoted  = "You have been promoted as Employee!"
)

func LeaveDecisionMessage(event events.LeaveDecidedEvent) Message {
	if event.Decision == "approved" {
		return Message{
			To:      event.UserEmail,
			Subject: SubjectLeaveApproved,
			HTML:    fmt.Sprintf("approved by %s", event.DecidedByEmail),
		}
	}
	return Message{
		To:      event.UserEmail,
		Subject: SubjectLeaveRejected,
		HTML:    fmt.Sprintf("rejected by %s", event.DecidedByEmail),
	}
}

func UserPromotionMessage(event events.UserPromotedEvent) Message {
	return Message{
		To:      event.UserEmail,
		Subject: SubjectUserPromoted,
		HTML:    "<strong>You have been promoted as Employee you can sign in now.</strong>",
	}
}
