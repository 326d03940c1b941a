package mailer

import (
	"context"

	"onlyflans/internal/domain/notify"
	"onlyflans/pkg/logger"
)

// ConsoleSender writes messages to the log instead of delivering them.
type ConsoleSender struct {
	from string
	log  logger.Logger
}

func NewConsoleSender(from string, log logger.Logger) *ConsoleSender {
	return &ConsoleSender{from: from, log: log}
}

func (s *ConsoleSender) Send(ctx context.Context, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return notify.ErrEmptyRecipient
	}
	s.log.Info("mailer.console: message",
		"from", s.from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.TextBody,
	)
	return nil
}
