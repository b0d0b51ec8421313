/*
errors.go - Error types for the simulation engine

PURPOSE:
  All configuration is validated eagerly, before the first simulated
  month. The only error an external caller has to handle is a
  configuration error; per-month SLA shortfalls are recorded on the
  result record instead of being raised.

USAGE:
  results, err := engine.Run(cfg)
  if engine.IsConfigurationError(err) {
      // reject the input, nothing was simulated
  }

SEE ALSO:
  - config.go: Validation that produces these errors
*/
package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the sentinel wrapped by every
// ConfigurationError. Use with errors.Is().
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a single invalid or inconsistent
// configuration field. Detected before any state mutation; fatal to
// the run.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsConfigurationError returns true if err stems from invalid input
// parameters rather than an internal failure.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

func configErr(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
