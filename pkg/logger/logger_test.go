package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestOptionsFromEnv(t *testing.T) {
	dev := OptionsFromEnv(envOf(map[string]string{"ENV": "Development"}))
	assert.Equal(t, slog.LevelDebug, dev.Level)
	assert.Equal(t, FormatText, dev.Format)
	assert.Equal(t, "onlyflans", dev.Service)

	prod := OptionsFromEnv(envOf(map[string]string{"ENV": "production"}))
	assert.Equal(t, slog.LevelInfo, prod.Level)
	assert.Equal(t, FormatJSON, prod.Format)
	assert.False(t, prod.AddSource)

	custom := OptionsFromEnv(envOf(map[string]string{"LOG_LEVEL": "WARNING", "LOG_FORMAT": " Text ", "LOG_SOURCE": "true"}))
	assert.Equal(t, slog.LevelWarn, custom.Level)
	assert.Equal(t, FormatText, custom.Format)
	assert.True(t, custom.AddSource)

	assert.Equal(t, LevelCritical, OptionsFromEnv(envOf(map[string]string{"LOG_LEVEL": "fatal"})).Level)
	assert.Equal(t, FormatJSON, OptionsFromEnv(envOf(map[string]string{"LOG_FORMAT": "xml"})).Format)
}

func TestCriticalLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelInfo, Format: FormatText})

	log.Critical("db: down")

	require.Contains(t, buf.String(), "level=CRITICAL")
}

func TestErrorHelpers(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Level: slog.LevelDebug, Format: FormatJSON, Service: "onlyflans"})

	log.BusinessError("subscribe: duplicate", nil)
	assert.Empty(t, buf.String())

	log.Component("web").With("email", "a@example.com").BusinessError("subscribe: duplicate", errors.New("dup"))
	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"service":"onlyflans"`)
	assert.Contains(t, out, `"component":"web"`)
	assert.Contains(t, out, `"error_kind":"business"`)
	assert.Contains(t, out, `"email":"a@example.com"`)

	buf.Reset()
	log.InternalError("db: ping failed", errors.New("refused"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error_kind":"internal"`)
}

func TestDiscardDropsEverything(t *testing.T) {
	log := Discard()
	log.Critical("ignored")
	log.Component("x").InternalError("ignored", errors.New("boom"))
}
