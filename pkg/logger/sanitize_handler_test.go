package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevFelipeRT/logmask/pkg/logger"
	"github.com/DevFelipeRT/logmask/pkg/sanitizer"
)

func newSanitizingLogger(t *testing.T, buf *bytes.Buffer) *slog.Logger {
	t.Helper()
	svc, err := sanitizer.New(sanitizer.Config{})
	require.NoError(t, err)
	return logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(buf),
		logger.WithSanitizer(svc),
	)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSanitizeHandler_Message(t *testing.T) {
	var buf bytes.Buffer
	log := newSanitizingLogger(t, &buf)

	log.Info("login failed, password: abc123")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "login failed, password: [MASKED]", entry["msg"])
}

func TestSanitizeHandler_Attrs(t *testing.T) {
	t.Run("sensitive key masks value", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Info("login", slog.String("password", "hunter2"), slog.String("user", "jane"))

		entry := decodeLine(t, &buf)
		assert.Equal(t, "[MASKED]", entry["password"])
		assert.Equal(t, "jane", entry["user"])
	})

	t.Run("string value goes through pipeline", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Info("contact", slog.String("note", "reach me at test@example.com"))

		entry := decodeLine(t, &buf)
		assert.Equal(t, "reach me at [MASKED]", entry["note"])
	})

	t.Run("numeric attrs untouched", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Info("metrics", slog.Int("attempts", 3), slog.Bool("locked", false))

		entry := decodeLine(t, &buf)
		assert.Equal(t, float64(3), entry["attempts"])
		assert.Equal(t, false, entry["locked"])
	})

	t.Run("group members sanitized", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Info("login", slog.Group("credentials",
			slog.String("password", "hunter2"),
			slog.String("username", "jane"),
		))

		entry := decodeLine(t, &buf)
		creds, ok := entry["credentials"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "[MASKED]", creds["password"])
		assert.Equal(t, "jane", creds["username"])
	})

	t.Run("composite any value sanitized recursively", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Info("payload", slog.Any("body", map[string]any{
			"token": "t-123",
			"name":  "jane",
		}))

		entry := decodeLine(t, &buf)
		body, ok := entry["body"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "[MASKED]", body["token"])
		assert.Equal(t, "jane", body["name"])
	})
}

func TestSanitizeHandler_ErrorAttr(t *testing.T) {
	t.Run("error message survives sanitization", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Error("db down", logger.Error(errors.New("connection refused")))

		entry := decodeLine(t, &buf)
		assert.Equal(t, "connection refused", entry["error"])
	})

	t.Run("sensitive error content masked", func(t *testing.T) {
		var buf bytes.Buffer
		log := newSanitizingLogger(t, &buf)

		log.Error("auth", logger.Error(errors.New("bad login, password: abc123")))

		entry := decodeLine(t, &buf)
		assert.Equal(t, "bad login, password: [MASKED]", entry["error"])
	})
}

func TestSanitizeHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newSanitizingLogger(t, &buf)

	log.With(slog.String("api_key", "k-123")).Info("boot")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "[MASKED]", entry["api_key"])
}

func TestSanitizeHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	log := newSanitizingLogger(t, &buf)

	log.WithGroup("request").Info("in", slog.String("password", "x"))

	entry := decodeLine(t, &buf)
	req, ok := entry["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[MASKED]", req["password"])
}

func TestNewSanitizeHandler_NilService(t *testing.T) {
	var buf bytes.Buffer
	next := slog.NewJSONHandler(&buf, nil)
	assert.Equal(t, next, logger.NewSanitizeHandler(next, nil))
}
