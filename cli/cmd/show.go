package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/rustcfg/log"
)

// Show prints the active configuration predicates of the selected target.
type Show struct {
	Format string `default:"native" enum:"native,json,yaml" help:"Output format."                 short:"o"`
	Indent int    `default:"2"                              help:"Indent width for json and yaml" short:"i"`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set, err := resolveSet(ctx)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "configuration parsed",
		slog.Int("keys", set.Len()),
		slog.String("triple", set.Triple()),
	)

	switch s.Format {
	case "json":
		return set.FormatJSON(ctx, os.Stdout, s.Indent)

	case "yaml":
		return set.FormatYAML(ctx, os.Stdout, s.Indent)

	default:
		return set.Format(os.Stdout)
	}
}
