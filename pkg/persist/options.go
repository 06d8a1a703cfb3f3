package persist

import (
	"github.com/bft-labs/udostore/pkg/log"
	"github.com/bft-labs/udostore/pkg/udo"
)

// Option configures optional behavior of a Coordinator.
type Option func(*options)

type options struct {
	logger    log.Logger
	primary   udo.Codec
	fallbacks []udo.Codec
}

func defaultOptions() options {
	return options{
		logger:    log.NewNoopLogger(),
		primary:   udo.JSON,
		fallbacks: []udo.Codec{udo.Percent},
	}
}

// WithLogger sets a logger for degraded-load and write-fault diagnostics.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPrimary replaces the codec used for every write and tried first on read.
func WithPrimary(codec udo.Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.primary = codec
		}
	}
}

// WithFallbacks replaces the read-only codecs tried, in order, after the
// primary codec fails. Calling it with no codecs disables fallback decoding.
func WithFallbacks(codecs ...udo.Codec) Option {
	return func(o *options) {
		o.fallbacks = append([]udo.Codec(nil), codecs...)
	}
}
