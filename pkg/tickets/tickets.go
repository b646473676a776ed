package tickets

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/ticketapp/ticketapp/pkg/events"
	"github.com/ticketapp/ticketapp/pkg/log"
	"github.com/ticketapp/ticketapp/pkg/storage"
	"github.com/ticketapp/ticketapp/pkg/types"
)

// Manager owns the ticket collection: CRUD plus aggregate counts.
// All operations are synchronous against the store.
type Manager struct {
	store  storage.Store
	broker *events.Broker
	logger zerolog.Logger
}

// NewManager creates a ticket manager over the given store. The
// broker may be nil, in which case no events are published.
func NewManager(store storage.Store, broker *events.Broker) *Manager {
	return &Manager{
		store:  store,
		broker: broker,
		logger: log.WithComponent("tickets"),
	}
}

// Create persists a new ticket from the supplied fields. ID and
// timestamps are assigned here; CreatedAt and UpdatedAt start equal.
// Field bounds are the caller's job (pkg/validation); only enum
// membership is enforced at this layer.
func (m *Manager) Create(input types.TicketInput) (*types.Ticket, error) {
	if !types.IsValidStatus(input.Status) {
		return nil, fmt.Errorf("invalid status: %q", input.Status)
	}
	if !types.IsValidPriority(input.Priority) {
		return nil, fmt.Errorf("invalid priority: %q", input.Priority)
	}

	now := time.Now()
	ticket := &types.Ticket{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := m.store.CreateTicket(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	m.logger.Info().Str("ticket_id", ticket.ID).Str("title", ticket.Title).Msg("ticket created")
	m.publish(events.EventTicketCreated, ticket)
	return ticket, nil
}

// List returns the full collection in insertion order. An empty store
// yields an empty slice, never an error.
func (m *Manager) List() ([]*types.Ticket, error) {
	tickets, err := m.store.ListTickets()
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// Get returns a single ticket or storage.ErrTicketNotFound.
func (m *Manager) Get(id string) (*types.Ticket, error) {
	return m.store.GetTicket(id)
}

// Update replaces the caller-supplied fields of an existing ticket
// and refreshes UpdatedAt. ID, Seq and CreatedAt are preserved. A
// missing id returns storage.ErrTicketNotFound with no mutation.
func (m *Manager) Update(id string, input types.TicketInput) (*types.Ticket, error) {
	if !types.IsValidStatus(input.Status) {
		return nil, fmt.Errorf("invalid status: %q", input.Status)
	}
	if !types.IsValidPriority(input.Priority) {
		return nil, fmt.Errorf("invalid priority: %q", input.Priority)
	}

	ticket, err := m.store.GetTicket(id)
	if err != nil {
		return nil, err
	}

	ticket.Title = input.Title
	ticket.Description = input.Description
	ticket.Status = input.Status
	ticket.Priority = input.Priority
	ticket.UpdatedAt = time.Now()

	if err := m.store.UpdateTicket(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	m.logger.Info().Str("ticket_id", ticket.ID).Msg("ticket updated")
	m.publish(events.EventTicketUpdated, ticket)
	return ticket, nil
}

// Delete removes a ticket and reports whether a removal occurred.
// Deleting a missing id returns false with no error.
func (m *Manager) Delete(id string) (bool, error) {
	removed, err := m.store.DeleteTicket(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete ticket: %w", err)
	}
	if removed {
		m.logger.Info().Str("ticket_id", id).Msg("ticket deleted")
		if m.broker != nil {
			m.broker.Publish(events.New(events.EventTicketDeleted, id, map[string]string{
				"ticket_id": id,
			}))
		}
	}
	return removed, nil
}

// Stats computes the dashboard counts in one pass over the
// collection. Always recomputed, never cached.
func (m *Manager) Stats() (*types.TicketStats, error) {
	tickets, err := m.store.ListTickets()
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	stats := &types.TicketStats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case types.StatusOpen:
			stats.Open++
		case types.StatusInProgress:
			stats.InProgress++
		case types.StatusClosed:
			stats.Closed++
		}
	}
	return stats, nil
}

func (m *Manager) publish(t events.EventType, ticket *types.Ticket) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(events.New(t, ticket.Title, map[string]string{
		"ticket_id": ticket.ID,
	}))
}
