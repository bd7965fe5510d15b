package cmd

import (
	"context"

	"github.com/ardnew/rustcfg/cli/cmd/repl"
	"github.com/ardnew/rustcfg/log"
)

// Repl starts an interactive prompt for evaluating expressions against
// the target configuration.
type Repl struct{}

// Run executes the repl command.
func (Repl) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set, err := resolveSet(ctx)
	if err != nil {
		return err
	}

	return repl.Run(ctx, set, log.Default())
}
