// Package cli contains the command line interface for rustcfg.
//
// # Usage
//
// The root command accepts flags controlling the toolchain invocation along
// with logging and profiling configuration:
//
//	rustcfg --target thumbv7em-none-eabihf show --format json
//	rustcfg get target_feature
//	rustcfg eval 'target.os == "linux" && has("unix")'
//	rustcfg repl
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/rustcfg/pprof)
package cli
