package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"onlyflans/internal/config"
	"onlyflans/internal/domain/notify"
)

// SMTPSender delivers multipart messages through an SMTP relay. A new
// connection is dialed per message.
type SMTPSender struct {
	from   string
	client *mail.Client
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	options := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		options = append(options, mail.WithTimeout(cfg.Timeout))
	} else {
		options = append(options, mail.WithTimeout(10*time.Second))
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, options...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPSender{from: cfg.From, client: client}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg notify.Message) error {
	message, err := buildMessage(s.from, msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func buildMessage(from string, msg notify.Message) (*mail.Msg, error) {
	if msg.To == "" {
		return nil, notify.ErrEmptyRecipient
	}

	message := mail.NewMsg()
	if err := message.From(from); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if msg.ToName != "" {
		if err := message.AddToFormat(msg.ToName, msg.To); err != nil {
			return nil, fmt.Errorf("to address: %w", err)
		}
	} else if err := message.To(msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	message.Subject(msg.Subject)
	message.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		message.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}
	return message, nil
}
