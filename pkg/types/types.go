package types

import "time"

// User represents a registered account.
//
// Password is stored as plain text. The application is a local,
// single-process demo and makes no attempt at credential hardening;
// see pkg/auth for the full caveat.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// Ticket represents a unit of work-tracking data.
type Ticket struct {
	ID          string         `json:"id"`
	Seq         uint64         `json:"seq"` // insertion order, assigned by the store
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      TicketStatus   `json:"status"`
	Priority    TicketPriority `json:"priority"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TicketInput carries the caller-supplied fields for create and
// update operations. ID, Seq and timestamps are always store-assigned.
type TicketInput struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Status      TicketStatus   `json:"status" yaml:"status"`
	Priority    TicketPriority `json:"priority" yaml:"priority"`
}

// TicketStatus defines the workflow state of a ticket
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

// TicketPriority defines the urgency of a ticket
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// IsValidStatus reports whether s is one of the defined statuses.
func IsValidStatus(s TicketStatus) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// IsValidPriority reports whether p is one of the defined priorities.
func IsValidPriority(p TicketPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TicketStats holds the aggregate counts shown on the dashboard.
type TicketStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Closed     int `json:"closed"`
}
