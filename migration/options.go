package migration

import "github.com/rs/zerolog"

// Option configures Compile.
type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger sets the logger used for debug output of the graph.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
