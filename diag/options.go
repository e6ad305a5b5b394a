package diag

import (
	"github.com/erraggy/errloc/locerrors"
	"github.com/erraggy/errloc/location"
)

// Option is a function that configures a Collector.
type Option func(*collectorConfig) error

// collectorConfig holds configuration for a Collector
type collectorConfig struct {
	resolver    location.Resolver
	logger      Logger
	minSeverity Severity
	specRef     func(vuid string) string
}

// applyOptions applies option functions over the defaults
func applyOptions(opts ...Option) (*collectorConfig, error) {
	cfg := &collectorConfig{
		logger:      NopLogger{},
		minSeverity: SeverityInfo,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithResolver sets the resolver used by Collector.Error to find the VUID
// of a location. Without one, errors are recorded with an empty VUID.
func WithResolver(r location.Resolver) Option {
	return func(cfg *collectorConfig) error {
		if r == nil {
			return &locerrors.ConfigError{Option: "resolver", Message: "must not be nil"}
		}
		cfg.resolver = r
		return nil
	}
}

// WithLogger sets the logger every accepted diagnostic is written to.
func WithLogger(l Logger) Option {
	return func(cfg *collectorConfig) error {
		if l == nil {
			return &locerrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// WithMinSeverity drops diagnostics less severe than s.
func WithMinSeverity(s Severity) Option {
	return func(cfg *collectorConfig) error {
		if s < SeverityInfo || s > SeverityError {
			return &locerrors.ConfigError{Option: "min-severity", Value: int(s), Message: "unknown severity"}
		}
		cfg.minSeverity = s
		return nil
	}
}

// WithSpecRef sets a function mapping a VUID to a documentation URL, which
// is stored in Diagnostic.SpecRef. vuid.SpecURL is the usual choice.
func WithSpecRef(fn func(vuid string) string) Option {
	return func(cfg *collectorConfig) error {
		cfg.specRef = fn
		return nil
	}
}
