package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/rustcfg/cfg"
)

// maxSuggestions bounds the "did you mean" list for unknown keys.
const maxSuggestions = 3

// Get prints the values recorded for a single predicate key.
type Get struct {
	Key string `arg:"" help:"Predicate key to look up" name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set, err := resolveSet(ctx)
	if err != nil {
		return err
	}

	values, ok := set.Get(g.Key)
	if !ok {
		attrs := []slog.Attr{slog.String("key", g.Key)}

		if near := suggest(g.Key, set.Keys()); len(near) > 0 {
			attrs = append(attrs,
				slog.String("did_you_mean", strings.Join(near, ", ")))
		}

		return cfg.ErrUnknownKey.With(attrs...)
	}

	// A bare flag has presence but no values to print.
	for _, value := range values {
		fmt.Println(value)
	}

	return nil
}

// suggest returns up to maxSuggestions candidate keys fuzzy-matching the
// requested key, best match first.
func suggest(key string, candidates []string) []string {
	matches := fuzzy.Find(key, candidates)

	near := make([]string, 0, maxSuggestions)

	for _, match := range matches {
		if len(near) == maxSuggestions {
			break
		}

		near = append(near, match.Str)
	}

	return near
}
