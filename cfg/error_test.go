package cfg

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestError_SentinelMatching(t *testing.T) {
	derived := ErrMissingField.With(slog.String("key", "target_arch"))

	if !errors.Is(derived, ErrMissingField) {
		t.Error("expected derived error to match its sentinel")
	}

	if errors.Is(derived, ErrInvalidEndian) {
		t.Error("expected derived error not to match other sentinels")
	}
}

func TestError_WrapPreservesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := ErrSpawn.Wrap(cause).With(slog.String("executable", "rustc"))

	if !errors.Is(err, ErrSpawn) {
		t.Error("expected wrapped error to match its sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to match its cause")
	}

	if msg := err.Error(); !strings.Contains(msg, "permission denied") {
		t.Errorf("expected cause in message, got %q", msg)
	}
}

func TestError_Message(t *testing.T) {
	err := ErrProcess.Wrap(fmt.Errorf("exit status 1"))

	want := "rustc exited unsuccessfully: exit status 1"
	if got := err.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrInvalidEndian.With(slog.String("value", "middle"))

	group := err.LogValue().Group()

	var found bool

	for _, attr := range group {
		if attr.Key == "value" && attr.Value.String() == "middle" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected value attribute in log group, got %v", group)
	}
}

func TestError_AttrsImmutable(t *testing.T) {
	err := ErrMissingField.With(slog.String("key", "target_os"))

	attrs := err.Attrs()
	attrs[0] = slog.String("key", "mutated")

	if got := err.Attrs()[0].Value.String(); got != "target_os" {
		t.Errorf("expected attrs copy, got %q", got)
	}
}
