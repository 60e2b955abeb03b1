package config

import "errors"

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDelimiterEmpty     = errors.New("delimiter cannot be empty")
	ErrInvalidValue       = errors.New("invalid value")
)
