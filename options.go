package kdtree

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a KdTree at construction time.
type Option func(*options)

// WithLogger sets the logger used for build and rebuild diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: noopLogger()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
