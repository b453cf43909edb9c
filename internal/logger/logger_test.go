package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: LevelDebug}
	l := slog.New(NewPrettyHandler(&buf, opts, false))

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("widget", "volume").Debug("progress changed", "progress", 42)

		output := buf.String()
		if !strings.Contains(output, "widget=volume") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "progress=42") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("gesture").With("state", "dragging").Info("move", "dx", 12.5)

		output := buf.String()
		if !strings.Contains(output, "gesture.state=dragging") {
			t.Errorf("output missing grouped persistent attr: %q", output)
		}
		if !strings.Contains(output, "gesture.dx=12.5") {
			t.Errorf("output missing grouped record attr: %q", output)
		}
	})

	t.Run("LevelFilter", func(t *testing.T) {
		buf.Reset()
		quiet := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
		quiet.Info("hidden")
		if buf.Len() != 0 {
			t.Errorf("info record should be filtered at warn level: %q", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func captureStderr(t *testing.T) (restore func() string) {
	t.Helper()
	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	return func() string {
		_ = w.Close()
		os.Stderr = prevStderr
		out, _ := io.ReadAll(r)
		return string(out)
	}
}

func TestPrettyHandler_NoColorWhenNotTTY(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return false }
	defer func() { isTerminal = prevIsTerminal }()

	done := captureStderr(t)
	Init(LevelInfo, nil)
	Info("test message", "key", "value")
	out := done()
	defer Init(LevelWarn, nil)

	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Fatalf("missing message: %q", out)
	}
}

func TestInit_WritesJSONLToLogFile(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return true }
	defer func() { isTerminal = prevIsTerminal }()

	done := captureStderr(t)
	var logBuf bytes.Buffer
	Init(LevelInfo, &logBuf)
	Info("progress confirmed", "progress", 100)
	out := done()
	defer Init(LevelWarn, nil)

	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &rec); err != nil {
		t.Fatalf("log file is not JSONL: %v (%q)", err, logBuf.String())
	}
	if rec["msg"] != "progress confirmed" {
		t.Fatalf("msg = %v, want %q", rec["msg"], "progress confirmed")
	}
}
