package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rustcfg/cfg"
	"github.com/ardnew/rustcfg/cli/cmd"
	"github.com/ardnew/rustcfg/pkg"
)

// CLI is the top-level command-line interface for rustcfg.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Rustc  string `help:"Toolchain executable to invoke (overrides $RUSTC)."       name:"rustc"`
	Target string `help:"Target triple to describe (default: the host's target)." name:"target" short:"t"`

	Show    cmd.Show    `cmd:"" default:"withargs" help:"Print the active configuration predicates"`
	Get     cmd.Get     `cmd:""                    help:"Print the values of one predicate key"`
	Eval    cmd.Eval    `cmd:""                    help:"Evaluate an expression against the configuration"`
	Repl    cmd.Repl    `cmd:""                    help:"Interactive expression prompt"`
	Version cmd.Version `cmd:""                    help:"Print version information"`
}

// invokeOptions converts the top-level flags into toolchain invocation
// options for the cfg package.
func (c *CLI) invokeOptions() []cfg.Option {
	opts := make([]cfg.Option, 0, 2)

	if c.Rustc != "" {
		opts = append(opts, cfg.WithRustc(c.Rustc))
	}

	if c.Target != "" {
		opts = append(opts, cfg.WithTarget(c.Target))
	}

	return opts
}

// Run executes the rustcfg CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless
	// of flag position. TextUnmarshaler on logFormat/logLevel handles
	// those flags during normal parsing, but this early scan also catches
	// boolean flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithInvokeOptions(ctx, cli.invokeOptions()...)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and
	// enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
