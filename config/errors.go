package config

import (
	"fmt"
)

// ConfigError reports an invalid value found in a chart description.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func invalid(field, value string, err error) error {
	return ConfigError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

func (e ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: invalid value %q: %s", e.Field, e.Value, e.Err)
}

func (e ConfigError) Unwrap() error {
	return e.Err
}
