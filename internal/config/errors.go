package config

import (
	"errors"
)

// Sentinel kinds for config failures: ErrLoadConfig covers file, env and
// unmarshal problems, ErrInvalidConfig covers validation. Callers match
// them with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
