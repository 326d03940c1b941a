package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"onlyflans/internal/config"
	"onlyflans/internal/domain/notify"
	"onlyflans/pkg/logger"
)

func TestNewSelectsBackend(t *testing.T) {
	sender, err := New(config.MailConfig{Backend: config.MailBackendConsole, From: "noreply@onlyflans.com"}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, &ConsoleSender{}, sender)

	sender, err = New(config.MailConfig{Backend: config.MailBackendSMTP, Host: "localhost", Port: 2525, From: "noreply@onlyflans.com"}, logger.Discard())
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, sender)

	_, err = New(config.MailConfig{Backend: "pigeon"}, logger.Discard())
	assert.Error(t, err)
}

func TestConsoleSenderLogsMessage(t *testing.T) {
	var buf bytes.Buffer
	sender := NewConsoleSender("noreply@onlyflans.com", logger.New(&buf, logger.Options{Level: slog.LevelInfo, Format: logger.FormatText}))

	err := sender.Send(context.Background(), notify.Message{To: "a@example.com", Subject: "Hello", TextBody: "plain body"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a@example.com")
	assert.Contains(t, buf.String(), "plain body")

	assert.ErrorIs(t, sender.Send(context.Background(), notify.Message{}), notify.ErrEmptyRecipient)
}

func TestBuildMessage(t *testing.T) {
	message, err := buildMessage("noreply@onlyflans.com", notify.Message{
		To:       "a@example.com",
		ToName:   "Ann",
		Subject:  "🍮 New Flan Alert: Flan A",
		HTMLBody: "<p>hi</p>",
		TextBody: "hi",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = message.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "a@example.com")
	assert.Contains(t, raw, "multipart/alternative")

	_, err = buildMessage("not an address", notify.Message{To: "a@example.com"})
	assert.Error(t, err)
}
