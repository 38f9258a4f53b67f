package admin

import (
	"io"
	"log/slog"
	"time"
)

// DefaultTimeout bounds every remote call made by the core.
const DefaultTimeout = 30 * time.Second

type options struct {
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// Option configures the core components.
type Option func(*options)

// WithLogger sets the logger. Components log to a discard handler otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds each remote call. Zero or negative disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
