package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rustcfg/cfg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// exit terminates the process through the exit function installed on the
// kong parser, so tests can intercept it.
func exit(ctx context.Context, code int) {
	if ktx := kongContextFrom(ctx); ktx != nil {
		ktx.Kong.Exit(code)
	}
}

type invokeKey struct{}

// WithInvokeOptions returns a new context.Context carrying the toolchain
// invocation options shared by all commands (executable override and
// target triple from the top-level flags).
func WithInvokeOptions(
	ctx context.Context,
	opts ...cfg.Option,
) context.Context {
	return context.WithValue(ctx, invokeKey{}, opts)
}

// invokeOptionsFrom extracts the toolchain invocation options stored by
// [WithInvokeOptions].
func invokeOptionsFrom(ctx context.Context) []cfg.Option {
	opts, ok := ctx.Value(invokeKey{}).([]cfg.Option)
	if !ok {
		return nil
	}

	return opts
}

// resolveSet invokes the toolchain once and parses its output using the
// invocation options carried by ctx.
func resolveSet(ctx context.Context) (*cfg.Set, error) {
	return cfg.Of(ctx, invokeOptionsFrom(ctx)...)
}
