package auth

import "errors"

var (
	// ErrMissingCredentials is returned by Login when either field is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrMissingFields is returned by Signup when any field is empty.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidCredentials is returned when no user matches the
	// supplied email and password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserExists is returned by Signup for an already-registered email.
	ErrUserExists = errors.New("user already exists")
)
