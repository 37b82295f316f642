package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrMissingRequiredKeys = errors.New("missing required configuration keys")
)
