package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/pareverse/hrms/internal/shared/apperror"

	"go.uber.org/zap"
)

// SMTPConfig comes straight from the environment, see cmd/consumer.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string // default sender when a message has no From
}

type smtpDispatcher struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewSMTPDispatcher(cfg SMTPConfig, logger ...*zap.Logger) Dispatcher {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.smtp")
	}
	return &smtpDispatcher{cfg: cfg, logger: l}
}

func (d *smtpDispatcher) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return apperror.RequiredField("to")
	}

	from := msg.From
	if from == "" {
		from = d.cfg.From
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		from, msg.To, msg.Subject, msg.HTML,
	)

	auth := smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	addr := d.cfg.Host + ":" + d.cfg.Port

	// smtp.SendMail has no context hook; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := smtp.SendMail(addr, auth, from, []string{msg.To}, []byte(body)); err != nil {
		d.logger.Error("send mail failed",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "notification dispatch failed", 503)
	}

	d.logger.Info("mail sent",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
