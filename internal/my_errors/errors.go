package my_errors

import "errors"

// Sentinel my_errors for business logic
var (
	// Member my_errors
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailTaken     = errors.New("email already used")

	// Matchmaking my_errors
	ErrEmptySearch = errors.New("search tags are required")

	// Event my_errors
	ErrEventNotFound = errors.New("event not found")

	// Auth my_errors
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenMismatch      = errors.New("token mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
