package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("hello", slog.String("who", "world"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", entry["msg"])
	}

	if entry["who"] != "world" {
		t.Errorf("expected who=world, got %v", entry["who"])
	}
}

func TestMake_TextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText))
	logger.Warn("careful", slog.Int("count", 3))

	out := buf.String()

	for _, want := range []string{"careful", "count=3", "WARN"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn))
	logger.Info("filtered")
	logger.Error("kept")

	out := buf.String()

	if strings.Contains(out, "filtered") {
		t.Error("expected info message below level to be discarded")
	}

	if !strings.Contains(out, "kept") {
		t.Error("expected error message to be emitted")
	}
}

func TestWrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))
	if logger.Level() != LevelError {
		t.Fatalf("expected error level, got %v", logger.Level())
	}

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	if wrapped.Level() != LevelDebug {
		t.Errorf("expected wrapped level debug, got %v", wrapped.Level())
	}

	// Original is unchanged.
	if logger.Level() != LevelError {
		t.Errorf("expected original level unchanged, got %v", logger.Level())
	}
}

func TestWith_Attributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText)).
		With(slog.String("component", "cli"))
	logger.Info("ready")

	if !strings.Contains(buf.String(), "component=cli") {
		t.Errorf("expected component attribute:\n%s", buf.String())
	}
}

func TestWithTimeLayout_None(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))
	logger.Info("stampless")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp:\n%s", buf.String())
	}
}

func TestZeroLogger_Safe(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format, got %v", logger.Format())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "bogus", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("text"); got != FormatText {
		t.Errorf("expected text, got %v", got)
	}

	if got := ParseFormat("json"); got != FormatJSON {
		t.Errorf("expected json, got %v", got)
	}

	if got := ParseFormat("bogus"); got != DefaultFormat {
		t.Errorf("expected default, got %v", got)
	}
}
