package consumer

import (
	"context"
	"encoding/json"

	"github.com/pareverse/hrms/internal/events"
	"github.com/pareverse/hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeLeaveDecisions turns committed leave decisions into exactly one
// email per event. The message is committed even when dispatch fails: mail
// is fire-and-forget relative to the decision, and re-delivering the event
// would risk duplicate emails rather than repair anything.
func ConsumeLeaveDecisions(
	ctx context.Context,
	reader *kafkago.Reader,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decisions")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave_decided event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := dispatcher.Send(ctx, notification.LeaveDecisionMessage(event)); err != nil {
			log.Error("send decision mail failed",
				zap.String("leave_id", event.LeaveID),
				zap.String("to", event.UserEmail),
				zap.String("decision", event.Decision),
				zap.Error(err),
			)
		} else {
			log.Info("decision mail sent",
				zap.String("leave_id", event.LeaveID),
				zap.String("to", event.UserEmail),
				zap.String("decision", event.Decision),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
		}
	}
}

// ConsumeUserPromotions mails users whose role was lifted to Employee.
func ConsumeUserPromotions(
	ctx context.Context,
	reader *kafkago.Reader,
	dispatcher notification.Dispatcher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.user_promotions")
	log.Info("user promotion consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("user promotion consumer stopped")
				return
			}
			log.Error("fetch user promotion message failed", zap.Error(err))
			continue
		}

		var event events.UserPromotedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode user_promoted event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := dispatcher.Send(ctx, notification.UserPromotionMessage(event)); err != nil {
			log.Error("send promotion mail failed",
				zap.String("user_id", event.UserID),
				zap.String("to", event.UserEmail),
				zap.Error(err),
			)
		} else {
			log.Info("promotion mail sent",
				zap.String("user_id", event.UserID),
				zap.String("to", event.UserEmail),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit user promotion message failed", zap.Error(err))
		}
	}
}
