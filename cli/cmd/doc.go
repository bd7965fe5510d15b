// Package cmd implements the rustcfg subcommands.
//
// Each command resolves the target configuration through one toolchain
// invocation using options carried on the context by the top-level CLI
// ([WithInvokeOptions]), then renders its result:
//
//   - [Show] prints every predicate in the native, JSON, or YAML format.
//   - [Get] prints the values of a single predicate key, with fuzzy
//     suggestions when the key is unknown.
//   - [Eval] evaluates an expr-lang expression against the predicates.
//   - [Repl] starts an interactive expression prompt.
//   - [Version] prints the embedded module version.
package cmd
