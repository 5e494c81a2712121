package usecase

import "errors"

var (
	// ErrInvalidInput is returned when registration or login input fails validation.
	// It is usually wrapped with a description of the offending field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
