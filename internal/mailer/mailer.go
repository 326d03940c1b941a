// Package mailer provides the notify.Sender implementations.
package mailer

import (
	"fmt"

	"onlyflans/internal/config"
	"onlyflans/internal/domain/notify"
	"onlyflans/pkg/logger"
)

// New returns the sender selected by cfg.Backend.
func New(cfg config.MailConfig, log logger.Logger) (notify.Sender, error) {
	switch cfg.Backend {
	case config.MailBackendConsole, "":
		return NewConsoleSender(cfg.From, log), nil
	case config.MailBackendSMTP:
		return NewSMTPSender(cfg)
	default:
		return nil, fmt.Errorf("mailer: unsupported backend %q", cfg.Backend)
	}
}
