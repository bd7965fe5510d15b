// Package profile provides optional runtime profiling for the rustcfg
// command.
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation support. Profiling is optional and must be enabled at build
// time using the "pprof" build tag:
//
//	go build -tags pprof
//
// When built without the tag (default), all operations are no-ops with
// zero runtime overhead.
//
// With the tag, the rustcfg command exposes profiling through flags:
//
//	rustcfg --pprof-mode cpu show
//	rustcfg --pprof-mode heap --pprof-dir ./profiles eval 'unix'
//
// Use [Modes] to retrieve the list of supported modes programmatically,
// and go tool pprof to analyze the written profile data.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
