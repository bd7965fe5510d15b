// Package repl implements the interactive expression prompt for rustcfg.
//
// The prompt evaluates expr-lang expressions against a parsed
// configuration [cfg.Set], with fuzzy completion over predicate keys and
// in-session history. Nothing is persisted across runs.
package repl
