// Package cfg invokes `rustc --print cfg` and parses the reported
// configuration predicates into a typed, immutable [Set].
//
// The package separates process invocation from parsing so that the parser
// is a pure function testable without spawning any process:
//
//	set, err := cfg.Parse(text)
//
// [Of] combines both steps, resolving the rustc executable from the RUSTC
// environment variable (or the fixed default) and running it with the
// --print cfg argument pair:
//
//	set, err := cfg.Of(ctx, cfg.WithTarget("x86_64-unknown-linux-gnu"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(set.Arch) // "x86_64"
//
// Every predicate reported by the toolchain, including the well-known typed
// ones, remains retrievable through the generic [Set.Get] lookup. Repeated
// keys such as target_feature accumulate their values in encounter order.
// Bare predicates (no value) are recorded as present flags with an empty
// value sequence.
//
// A [Set] also supports evaluating expr-lang expressions over its
// predicates via [Set.Eval], and marshaling to JSON, YAML, or the native
// line format via the Format methods.
package cfg
