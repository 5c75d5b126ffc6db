package convert

import "errors"

// ErrEmptyInput is returned when Convert receives no comments at all.
var ErrEmptyInput = errors.New("no comments to convert")

// ConfigError reports a layout configuration that cannot drive a conversion.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	if e == nil || e.Err == nil {
		return "invalid layout config"
	}
	return "invalid layout config: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
