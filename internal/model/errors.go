package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel matched by every shape validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError describes which shape parameter was rejected and why.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %g %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// IsInvalidConfig reports whether err (or anything it wraps) is a shape
// validation failure.
func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
