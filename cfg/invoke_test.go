package cfg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
)

func TestExecutableResolution(t *testing.T) {
	none := func(string) (string, bool) { return "", false }

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "default when nothing set",
			opts: []Option{WithLookupEnv(none)},
			want: DefaultRustc,
		},
		{
			name: "environment override wins over default",
			opts: []Option{
				WithLookupEnv(func(key string) (string, bool) {
					if key == RustcEnv {
						return "/opt/rust/bin/rustc", true
					}

					return "", false
				}),
			},
			want: "/opt/rust/bin/rustc",
		},
		{
			name: "empty override falls back to default",
			opts: []Option{
				WithLookupEnv(func(string) (string, bool) {
					return "", true
				}),
			},
			want: DefaultRustc,
		},
		{
			name: "explicit path wins over override",
			opts: []Option{
				WithRustc("/usr/local/bin/rustc"),
				WithLookupEnv(func(string) (string, bool) {
					return "/elsewhere/rustc", true
				}),
			},
			want: "/usr/local/bin/rustc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := apply(invoker{}, tt.opts...)

			if got := inv.executable(); got != tt.want {
				t.Errorf("expected executable %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInvokerArgs(t *testing.T) {
	inv := apply(invoker{})
	if got := inv.args(); !strings.HasSuffix(strings.Join(got, " "), "--print cfg") {
		t.Errorf("expected --print cfg, got %v", got)
	}

	inv = apply(invoker{}, WithTarget("thumbv7m-none-eabi"))

	want := []string{"--target", "thumbv7m-none-eabi", "--print", "cfg"}
	if got := strings.Join(inv.args(), " "); got != strings.Join(want, " ") {
		t.Errorf("expected args %v, got %v", want, got)
	}
}

// fakeRustc writes an executable shell script that emits the given stdout
// and stderr text and exits with the given code.
func fakeRustc(t *testing.T, stdout, stderr string, code int) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	var sb strings.Builder

	sb.WriteString("#!/bin/sh\n")

	if stdout != "" {
		sb.WriteString("printf '%s' " + shellQuote(stdout) + "\n")
	}

	if stderr != "" {
		sb.WriteString("printf '%s' " + shellQuote(stderr) + " >&2\n")
	}

	sb.WriteString("exit " + strconv.Itoa(code) + "\n")

	path := filepath.Join(t.TempDir(), "rustc")

	err := os.WriteFile(path, []byte(sb.String()), 0o755)
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return path
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func TestOf_Success(t *testing.T) {
	path := fakeRustc(t, wellFormed(), "", 0)

	set, err := Of(context.Background(), WithRustc(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if set.Arch != "x86_64" || set.OS != "linux" {
		t.Errorf("unexpected typed fields: arch=%q os=%q", set.Arch, set.OS)
	}
}

func TestOutput_SpawnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-rustc")

	_, err := Output(context.Background(), WithRustc(missing))
	if !errors.Is(err, ErrSpawn) {
		t.Fatalf("expected ErrSpawn, got %v", err)
	}

	if got := attrString(t, err, "executable"); got != missing {
		t.Errorf("expected executable attr %q, got %q", missing, got)
	}
}

func TestOutput_ProcessError(t *testing.T) {
	path := fakeRustc(t, "partial output\n", "error: unknown target\n", 1)

	_, err := Output(context.Background(), WithRustc(path))
	if !errors.Is(err, ErrProcess) {
		t.Fatalf("expected ErrProcess, got %v", err)
	}

	if got := attrString(t, err, "stderr"); !strings.Contains(got, "unknown target") {
		t.Errorf("expected stderr in error attrs, got %q", got)
	}

	if got := attrString(t, err, "exit_code"); got != "1" {
		t.Errorf("expected exit code 1, got %q", got)
	}
}

func TestOutput_DecodeError(t *testing.T) {
	path := fakeRustc(t, "", "", 0)

	// Rewrite the fixture to emit bytes that are not valid UTF-8.
	script := "#!/bin/sh\nprintf '\\377\\376'\nexit 0\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := Output(context.Background(), WithRustc(path))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
