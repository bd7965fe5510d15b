package cfg

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestToMap(t *testing.T) {
	set, err := Parse(wellFormed() +
		"target_feature=\"sse\"\ntarget_feature=\"sse2\"\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := set.ToMap()

	if v, ok := m["unix"].(bool); !ok || !v {
		t.Errorf("expected bare flag as true, got %v", m["unix"])
	}

	if v, ok := m["target_os"].(string); !ok || v != "linux" {
		t.Errorf("expected single value as string, got %v", m["target_os"])
	}

	if v, ok := m["target_feature"].([]string); !ok || len(v) != 2 {
		t.Errorf("expected repeated key as slice, got %v", m["target_feature"])
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	set, err := Parse(wellFormed() +
		"target_feature=\"sse\"\ntarget_feature=\"sse2\"\ndebug_assertions\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var sb strings.Builder

	if err := set.Format(&sb); err != nil {
		t.Fatalf("format error: %v", err)
	}

	again, err := Parse(sb.String())
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}

	if again.Arch != set.Arch || again.OS != set.OS ||
		again.PointerWidth != set.PointerWidth {
		t.Errorf("typed fields changed across round trip: %+v vs %+v",
			again, set)
	}

	for _, key := range set.Keys() {
		want, _ := set.Get(key)

		got, ok := again.Get(key)
		if !ok {
			t.Errorf("key %q lost across round trip", key)

			continue
		}

		if len(got) != len(want) {
			t.Errorf("key %q values changed: %v vs %v", key, got, want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	set, err := Parse(wellFormed())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var sb strings.Builder

	err = set.FormatJSON(context.Background(), &sb, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if m["target_arch"] != "x86_64" {
		t.Errorf("expected target_arch x86_64, got %v", m["target_arch"])
	}

	if m["unix"] != true {
		t.Errorf("expected bare flag true, got %v", m["unix"])
	}
}

func TestFormatYAML(t *testing.T) {
	set, err := Parse(wellFormed())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var sb strings.Builder

	err = set.FormatYAML(context.Background(), &sb, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := sb.String()

	for _, want := range []string{"target_arch: x86_64", "unix: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected YAML output to contain %q:\n%s", want, out)
		}
	}
}
