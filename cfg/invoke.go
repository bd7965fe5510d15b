package cfg

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"unicode/utf8"
)

const (
	// DefaultRustc is the executable name invoked when no override applies.
	DefaultRustc = "rustc"

	// RustcEnv names the environment variable consulted for an executable
	// override. A non-empty value takes precedence unconditionally over
	// [DefaultRustc]; Cargo sets it for build scripts.
	RustcEnv = "RUSTC"
)

// invoker holds the resolved inputs for one toolchain invocation.
type invoker struct {
	rustc     string
	target    string
	lookupEnv func(string) (string, bool)
}

// Option applies a configuration option to an invocation.
type Option func(invoker) invoker

// apply applies multiple options to an invoker.
func apply(inv invoker, opts ...Option) invoker {
	for _, opt := range opts {
		inv = opt(inv)
	}

	return inv
}

// WithRustc sets the executable to invoke, bypassing both the environment
// override and the default name.
func WithRustc(path string) Option {
	return func(inv invoker) invoker {
		inv.rustc = path

		return inv
	}
}

// WithTarget adds a --target argument selecting the compilation target
// triple to describe. An empty triple describes the host target.
func WithTarget(triple string) Option {
	return func(inv invoker) invoker {
		inv.target = triple

		return inv
	}
}

// WithLookupEnv replaces the environment lookup used to resolve the
// executable override. The default is [os.LookupEnv]. Tests use this to
// inject arbitrary overrides without mutating the process environment.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(inv invoker) invoker {
		inv.lookupEnv = lookup

		return inv
	}
}

// executable resolves the name of the toolchain binary to invoke.
func (inv invoker) executable() string {
	if inv.rustc != "" {
		return inv.rustc
	}

	lookup := inv.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if name, ok := lookup(RustcEnv); ok && name != "" {
		return name
	}

	return DefaultRustc
}

// args builds the fixed argument list requesting the configuration dump.
func (inv invoker) args() []string {
	args := make([]string, 0, 4)

	if inv.target != "" {
		args = append(args, "--target", inv.target)
	}

	return append(args, "--print", "cfg")
}

// Output invokes the resolved toolchain binary once and returns its
// captured standard output as text.
//
// The child process receives no stdin and no interactive terminal. A
// launch failure yields [ErrSpawn] carrying the attempted executable name;
// a non-zero exit yields [ErrProcess] carrying the exit code and captured
// stderr; output that is not valid UTF-8 yields [ErrDecode]. No retry is
// performed. Callers wanting a timeout wrap ctx with their own deadline.
func Output(ctx context.Context, opts ...Option) (string, error) {
	inv := apply(invoker{}, opts...)
	name := inv.executable()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, inv.args()...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return "", ErrProcess.Wrap(err).With(
				slog.String("executable", name),
				slog.Int("exit_code", exit.ExitCode()),
				slog.String("stderr", stderr.String()),
			)
		}

		return "", ErrSpawn.Wrap(err).
			With(slog.String("executable", name))
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", ErrDecode.
			With(slog.String("executable", name))
	}

	return stdout.String(), nil
}

// Of invokes the toolchain via [Output] and parses the captured text into
// a [Set] via [Parse].
func Of(ctx context.Context, opts ...Option) (*Set, error) {
	text, err := Output(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return Parse(text)
}
