package storage

import (
	"github.com/ticketapp/ticketapp/pkg/types"
)

// Store defines the interface for durable application state.
// Implemented by the BoltDB-backed store in this package.
type Store interface {
	// Users
	CreateUser(user *types.User) error
	GetUser(id string) (*types.User, error)
	GetUserByEmail(email string) (*types.User, error)
	ListUsers() ([]*types.User, error)

	// Tickets
	CreateTicket(ticket *types.Ticket) error
	GetTicket(id string) (*types.Ticket, error)
	ListTickets() ([]*types.Ticket, error)
	UpdateTicket(ticket *types.Ticket) error
	DeleteTicket(id string) (bool, error)

	// Session (single slot)
	SaveSession(user *types.User) error
	GetSession() (*types.User, error)
	ClearSession() error

	// Utility
	Close() error
}
