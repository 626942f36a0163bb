// Package testutil provides test utilities for structured logging.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Record is a captured log entry.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// CaptureHandler keeps every record it handles so tests can assert on
// warnings emitted as a side channel.
type CaptureHandler struct {
	mu      *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

// NewCaptureLogger returns a logger and the handler recording its output.
func NewCaptureLogger() (*slog.Logger, *CaptureHandler) {
	h := &CaptureHandler{mu: &sync.Mutex{}, records: &[]Record{}}
	return slog.New(h), h
}

// Enabled implements slog.Handler.
func (h *CaptureHandler) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: r.Level, Message: r.Message, Attrs: map[string]string{}}
	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.String()
		return true
	})

	h.mu.Lock()
	*h.records = append(*h.records, rec)
	h.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &CaptureHandler{mu: h.mu, records: h.records, attrs: merged}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *CaptureHandler) WithGroup(string) slog.Handler { return h }

// Records returns a copy of everything captured so far.
func (h *CaptureHandler) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Record(nil), *h.records...)
}

// AtLevel returns the captured records with the given level.
func (h *CaptureHandler) AtLevel(level slog.Level) []Record {
	var out []Record
	for _, r := range h.Records() {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// String renders captured messages, one per line, for failure output.
func (h *CaptureHandler) String() string {
	var buf bytes.Buffer
	for _, r := range h.Records() {
		buf.WriteString(r.Level.String())
		buf.WriteString(" ")
		buf.WriteString(r.Message)
		buf.WriteString("\n")
	}
	return buf.String()
}
