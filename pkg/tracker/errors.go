package tracker

import "errors"

// Tracker-specific errors
var (
	ErrUnauthorized    = errors.New("unauthorized access to tracker API")
	ErrRequestFailed   = errors.New("tracker request failed")
	ErrInvalidResponse = errors.New("invalid tracker response")
)
