package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"Error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf, Prefix: "easylog"})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.WithComponent("app").WithField("action", "debuglog.log").Info("done %d", 1)

	want := "2024-01-02T03:04:05.000 [INFO] easylog: done 1 {action=debuglog.log, component=app}\n"
	if buf.String() != want {
		t.Errorf("log line = %q, want %q", buf.String(), want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("filtered messages written: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[WARN] shown") {
		t.Errorf("warning missing: %q", buf.String())
	}
}

func TestLoggerWithInvocation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	tagged, id := l.WithInvocation()
	_, other := l.WithInvocation()
	if id == "" || id == other {
		t.Fatalf("invocation ids %q and %q should be distinct and non-empty", id, other)
	}

	tagged.Debug("x")
	if !strings.Contains(buf.String(), "invocation="+id) {
		t.Errorf("log line missing invocation: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing")
	NullLogger.WithField("a", 1).Info("nothing")
}
