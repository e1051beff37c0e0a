package config

import "errors"

var (
	// ErrNotStructPointer is returned when Load receives anything other than a pointer to a struct.
	ErrNotStructPointer = errors.New("config: must pass a pointer to struct")
	// ErrParseFailed is returned when environment variables cannot be parsed into the struct.
	ErrParseFailed = errors.New("config: failed to parse environment")
)
