package notification_test

import (
	"testing"

	"github.com/pareverse/hrms/internal/events"
	"github.com/pareverse/hrms/internal/notification"

	"github.com/stretchr/testify/assert"
)

func TestLeaveDecisionMessage(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		msg := notification.LeaveDecisionMessage(events.LeaveDecidedEvent{
			UserEmail:      "jess@pareverse.io",
			Decision:       "approved",
			DecidedByEmail: "mara@pareverse.io",
		})

		assert.Equal(t, "jess@pareverse.io", msg.To)
		assert.Equal(t, notification.SubjectLeaveApproved, msg.Subject)
		assert.Contains(t, msg.HTML, "approved by mara@pareverse.io")
	})

	t.Run("rejected", func(t *testing.T) {
		msg := notification.LeaveDecisionMessage(events.LeaveDecidedEvent{
			UserEmail:      "jess@pareverse.io",
			Decision:       "rejected",
			DecidedByEmail: "mara@pareverse.io",
		})

		assert.Equal(t, notification.SubjectLeaveRejected, msg.Subject)
		assert.Contains(t, msg.HTML, "rejected by mara@pareverse.io")
	})
}

func TestUserPromotionMessage(t *testing.T) {
	msg := notification.UserPromotionMessage(events.UserPromotedEvent{
		UserEmail: "jess@pareverse.io",
		Role:      "Employee",
	})

	assert.Equal(t, "jess@pareverse.io", msg.To)
	assert.Equal(t, notification.SubjectUserPromoted, msg.Subject)
	assert.Contains(t, msg.HTML, "sign in now")
}
