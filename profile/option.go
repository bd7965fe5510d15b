//go:build pprof

package profile

// Option transforms a profiler control, selecting pkg/profile
// configuration functions to pass to its Start.
type Option func(control) control

// apply folds opts over c in order.
func apply(c control, opts ...Option) control {
	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// newControl builds a control from opts applied to the zero value.
func newControl(opts ...Option) control {
	return apply(control{}, opts...)
}
