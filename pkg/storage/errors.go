package storage

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrSessionNotFound = errors.New("no active session")
)
