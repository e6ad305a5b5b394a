package vuid

import (
	"os"

	"github.com/erraggy/errloc/diag"
	"github.com/erraggy/errloc/internal/options"
	"github.com/erraggy/errloc/locerrors"
)

// Option is a function that configures a Registry.
type Option func(*registryConfig) error

// registryConfig holds configuration for building a Registry
type registryConfig struct {
	// Table source (at most one may be set; the embedded table is the default)
	tablePath *string
	tableData []byte

	logger diag.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*registryConfig, error) {
	cfg := &registryConfig{
		logger: diag.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateAtMostOneSource(
		"must specify at most one table source (WithTable or WithTableData)",
		cfg.tablePath != nil, cfg.tableData != nil,
	); err != nil {
		return nil, &locerrors.ConfigError{Option: "table", Cause: err}
	}

	return cfg, nil
}

// table returns the raw YAML selected by the options.
func (cfg *registryConfig) table() (data []byte, source string, err error) {
	switch {
	case cfg.tablePath != nil:
		b, readErr := os.ReadFile(*cfg.tablePath)
		if readErr != nil {
			return nil, "", &locerrors.ConfigError{Option: "table", Value: *cfg.tablePath, Message: "cannot read table", Cause: readErr}
		}
		return b, *cfg.tablePath, nil
	case cfg.tableData != nil:
		return cfg.tableData, "inline", nil
	default:
		return defaultTable, "embedded", nil
	}
}

// WithTable loads the VUID table from a YAML file.
func WithTable(path string) Option {
	return func(cfg *registryConfig) error {
		if path == "" {
			return &locerrors.ConfigError{Option: "table", Message: "path must not be empty"}
		}
		cfg.tablePath = &path
		return nil
	}
}

// WithTableData loads the VUID table from YAML bytes.
func WithTableData(data []byte) Option {
	return func(cfg *registryConfig) error {
		if data == nil {
			data = []byte{}
		}
		cfg.tableData = data
		return nil
	}
}

// WithLogger sets the logger used for load and lookup-miss messages.
func WithLogger(l diag.Logger) Option {
	return func(cfg *registryConfig) error {
		if l == nil {
			return &locerrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		cfg.logger = l
		return nil
	}
}
