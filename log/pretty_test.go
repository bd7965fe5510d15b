package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	)
	logger.Error("boom", slog.String("cause", "disk"))

	out := buf.String()

	if !strings.Contains(out, colorRed+"ERROR"+colorReset) {
		t.Errorf("expected colorized level:\n%q", out)
	}

	if !strings.Contains(out, "cause=") || !strings.Contains(out, "disk") {
		t.Errorf("expected attribute in output:\n%q", out)
	}
}

func TestPrettyTextHandler_Groups(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	)
	logger.Info("grouped",
		slog.Group("proc", slog.Int("exit_code", 2)))

	if !strings.Contains(buf.String(), "proc.exit_code=") {
		t.Errorf("expected dotted group key:\n%q", buf.String())
	}
}

func TestPrettyTextHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	).With(slog.String("component", "repl"))
	logger.Info("ready")

	if !strings.Contains(buf.String(), "component=") {
		t.Errorf("expected bound attribute:\n%q", buf.String())
	}
}
