package types

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every parameter validation failure.
var ErrConfig = errors.New("invalid configuration")

// ConfigError reports a scalar parameter that cannot be used to build a mesh.
type ConfigError struct {
	Param  string
	Value  float64
	Reason string
}

func NewConfigError(param string, value float64, reason string) *ConfigError {
	return &ConfigError{Param: param, Value: value, Reason: reason}
}

func (ce *ConfigError) Error() string {
	return fmt.Sprintf("%s: parameter %s = %g %s", ErrConfig, ce.Param, ce.Value, ce.Reason)
}

func (ce *ConfigError) Unwrap() error { return ErrConfig }
