package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "restoring session", "key", "auth.token")
	log.Info(ctx, "login succeeded", "user", "ana")
	log.Warn(ctx, "interests not loaded", "status", 503)
	log.Error(ctx, "save failed", "id", 7)

	out := buf.String()
	for _, s := range []string{
		"level=DEBUG", `msg="restoring session"`, "key=auth.token",
		"level=INFO", `msg="login succeeded"`, "user=ana",
		"level=WARN", "status=503",
		"level=ERROR", "id=7",
	} {
		assert.Contains(t, out, s)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("component", "gate").Info(context.Background(), "forced logout", "reason", "expired")

	out := buf.String()
	assert.Contains(t, out, "component=gate")
	assert.Contains(t, out, "reason=expired")
}

func TestSlogLogger_RequestIDFromContext(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := WithRequestID(context.Background(), "req-42")

	log.Info(ctx, "backend error", "status", 500)
	log.Info(context.Background(), "plain")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("request_id")))
}

func TestSlogLogger_SkipsDisabledLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
