package calf

import "errors"

// Common errors used throughout the calf package
var (
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrUnknownConfigKey is returned when a config file carries a key calf does not know
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	// ErrUnknownLiteralType indicates a literal type other than int, float or decimal
	ErrUnknownLiteralType = errors.New("unknown literal type")
)
