package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pareverse/hrms/internal/events"
	"github.com/pareverse/hrms/internal/messaging/kafka/consumer"
	"github.com/pareverse/hrms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads decision and promotion events and hands them to the SMTP
// dispatcher. It shares the decision transaction with nothing; a mail failure
// only logs.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	dispatcher := notification.NewSMTPDispatcher(notification.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})

	decisionReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.LeaveDecidedTopic,
		GroupID:        "hrms-notifications-leave",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer decisionReader.Close()

	promotionReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.UserPromotedTopic,
		GroupID:        "hrms-notifications-user",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer promotionReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeLeaveDecisions(ctx, decisionReader, dispatcher, logger)
	go consumer.ConsumeUserPromotions(ctx, promotionReader, dispatcher, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
