package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidDifficultyLevel is returned when a review difficulty level
	// is outside the 1..5 range.
	ErrInvalidDifficultyLevel = errors.New("invalid difficulty level")

	// ErrInvalidNotificationType is returned when a notification type is
	// not one of the known values.
	ErrInvalidNotificationType = errors.New("invalid notification type")

	// ErrInvalidSessionHour is returned when a session hour is outside 0..23.
	ErrInvalidSessionHour = errors.New("session hour must be between 0 and 23")
)
