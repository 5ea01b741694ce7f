package gridsparse

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be disabled at every level")
	}
	DebugLog("nothing %d", 1) // must not panic
}

func TestSetLoggerAndDebugLog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	DebugLog("sample %d box=%v", 3, []int{1, 2})
	if !strings.Contains(buf.String(), "sample 3 box=[1 2]") {
		t.Fatalf("debug message missing, got %q", buf.String())
	}

	buf.Reset()
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	DebugLog("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message leaked at info level: %q", buf.String())
	}
}
