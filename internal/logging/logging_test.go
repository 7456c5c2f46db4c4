package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, FormatText, &buf)

	logger.Info("list loaded", "section", "items")

	output := buf.String()
	if !strings.Contains(output, "list loaded") {
		t.Errorf("expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "section=items") {
		t.Errorf("expected section=items in output, got: %s", output)
	}
	if !strings.Contains(output, "app=gtc-admin") {
		t.Errorf("expected app attribute in output, got: %s", output)
	}
}

func TestNewLoggerWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "JSON", &buf)

	logger.Info("list loaded", "section", "users")

	output := buf.String()
	if !strings.Contains(output, `"msg":"list loaded"`) {
		t.Errorf("expected JSON msg field in output, got: %s", output)
	}
	if !strings.Contains(output, `"section":"users"`) {
		t.Errorf("expected JSON section field in output, got: %s", output)
	}
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, FormatText, &buf)

	logger.Info("should not appear")
	logger.Warn("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("INFO message should be filtered at WARN level, got: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("WARN message should appear at WARN level, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base := NewLoggerWithWriter(slog.LevelDebug, FormatText, &buf)
	reqLogger := base.With("request_id", "req_1234abcd")

	ctx := WithLogger(context.Background(), reqLogger)
	FromContext(ctx, base).Debug("handled")
	if !strings.Contains(buf.String(), "request_id=req_1234abcd") {
		t.Errorf("expected request logger from context, got: %s", buf.String())
	}

	if got := FromContext(context.Background(), base); got != base {
		t.Error("expected fallback logger for empty context")
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}
