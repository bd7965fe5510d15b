package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/rustcfg/log"
)

// Eval evaluates an expression against the target configuration.
//
// Predicate keys are bound as variables, the typed fields are available
// under "target", and the helpers has(key), value(key), and values(key)
// cover arbitrary lookup. A boolean result additionally sets the exit
// status (0 for true, 1 for false) for use in shell conditionals.
type Eval struct {
	Expr  string `arg:"" help:"Expression to evaluate" name:"expr"`
	Quiet bool   `       help:"Suppress output, only set the exit status." short:"q"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set, err := resolveSet(ctx)
	if err != nil {
		return err
	}

	result, err := set.Eval(e.Expr)
	if err != nil {
		return err
	}

	if !e.Quiet {
		fmt.Println(formatResult(result))
	}

	if b, ok := result.(bool); ok && !b {
		log.DebugContext(ctx, "expression is false",
			slog.String("expr", e.Expr),
		)
		exit(ctx, 1)
	}

	return nil
}

// formatResult renders an evaluation result for terminal output.
func formatResult(result any) string {
	switch v := result.(type) {
	case nil:
		return "<undefined>"
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
