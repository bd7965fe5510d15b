//go:build pprof

package profile

import (
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// modes maps each selectable mode name to its pkg/profile configuration
// function. The "quiet" entry suppresses logging and is reachable only
// through [WithQuiet], never by name.
var modes = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"quiet":     profile.Quiet,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the sorted mode names selectable with the pprof build tag.
var Modes = sync.OnceValue(
	func() []string {
		names := make([]string, 0, len(modes)-1)

		for name := range modes {
			if name == "quiet" {
				continue
			}

			names = append(names, name)
		}

		slices.Sort(names)

		return names
	},
)

// control accumulates the pkg/profile configuration functions selected by
// the applied options.
type control struct {
	opts []func(*profile.Profile)
}

func start(mode, path string, quiet bool) interface{ Stop() } {
	c := newControl(withMode(mode))

	// An unrecognized mode selects nothing to profile.
	if len(c.opts) == 0 {
		return ignore{}
	}

	return profile.Start(
		apply(c, withPath(path), withQuiet(quiet)).opts...,
	)
}

func withMode(name string) Option {
	return func(c control) control {
		if fn, ok := modes[name]; ok {
			c.opts = append(c.opts, fn)
		}

		return c
	}
}

func withPath(dir string) Option {
	return func(c control) control {
		if dir != "" {
			c.opts = append(c.opts, profile.ProfilePath(dir))
		}

		return c
	}
}

func withQuiet(enable bool) Option {
	return func(c control) control {
		if enable {
			c.opts = append(c.opts, profile.Quiet)
		}

		return c
	}
}
