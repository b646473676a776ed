package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/ticketapp/ticketapp/pkg/types"
	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewBoltStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)

	user := &types.User{
		ID:        "user-1",
		Email:     "ada@example.com",
		Name:      "Ada",
		Password:  "hunter22",
		CreatedAt: time.Now(),
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	got, err := store.GetUser("user-1")
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Email != user.Email || got.Name != user.Name || got.Password != user.Password {
		t.Errorf("GetUser() = %+v, want %+v", got, user)
	}

	byEmail, err := store.GetUserByEmail("ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != "user-1" {
		t.Errorf("GetUserByEmail() ID = %s, want user-1", byEmail.ID)
	}

	if _, err := store.GetUser("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser(missing) error = %v, want ErrUserNotFound", err)
	}
	if _, err := store.GetUserByEmail("nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUserByEmail(missing) error = %v, want ErrUserNotFound", err)
	}

	users, err := store.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 1 {
		t.Errorf("ListUsers() len = %d, want 1", len(users))
	}
}

func TestTicketInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	// IDs chosen to iterate in reverse key order; ListTickets must
	// still return creation order.
	ids := []string{"zzz", "mmm", "aaa"}
	for _, id := range ids {
		ticket := &types.Ticket{
			ID:     id,
			Title:  "ticket " + id,
			Status: types.StatusOpen,
		}
		if err := store.CreateTicket(ticket); err != nil {
			t.Fatalf("CreateTicket(%s) error = %v", id, err)
		}
	}

	tickets, err := store.ListTickets()
	if err != nil {
		t.Fatalf("ListTickets() error = %v", err)
	}
	if len(tickets) != len(ids) {
		t.Fatalf("ListTickets() len = %d, want %d", len(tickets), len(ids))
	}
	for i, want := range ids {
		if tickets[i].ID != want {
			t.Errorf("tickets[%d].ID = %s, want %s", i, tickets[i].ID, want)
		}
	}
}

func TestTicketUpdateMissing(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateTicket(&types.Ticket{ID: "missing", Title: "x"})
	if !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("UpdateTicket(missing) error = %v, want ErrTicketNotFound", err)
	}
}

func TestTicketDelete(t *testing.T) {
	store := newTestStore(t)

	ticket := &types.Ticket{ID: "t-1", Title: "delete me", Status: types.StatusOpen}
	if err := store.CreateTicket(ticket); err != nil {
		t.Fatalf("CreateTicket() error = %v", err)
	}

	removed, err := store.DeleteTicket("t-1")
	if err != nil {
		t.Fatalf("DeleteTicket() error = %v", err)
	}
	if !removed {
		t.Error("DeleteTicket(existing) = false, want true")
	}

	removed, err = store.DeleteTicket("t-1")
	if err != nil {
		t.Fatalf("DeleteTicket() second call error = %v", err)
	}
	if removed {
		t.Error("DeleteTicket(missing) = true, want false")
	}

	tickets, err := store.ListTickets()
	if err != nil {
		t.Fatalf("ListTickets() error = %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("ListTickets() len = %d, want 0", len(tickets))
	}
}

func TestSessionSlot(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetSession(); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession(empty) error = %v, want ErrSessionNotFound", err)
	}

	user := &types.User{ID: "user-1", Email: "ada@example.com", Name: "Ada"}
	if err := store.SaveSession(user); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	got, err := store.GetSession()
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.ID != user.ID || got.Email != user.Email {
		t.Errorf("GetSession() = %+v, want %+v", got, user)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	if _, err := store.GetSession(); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession(cleared) error = %v, want ErrSessionNotFound", err)
	}
	// Clearing again is a no-op
	if err := store.ClearSession(); err != nil {
		t.Errorf("ClearSession() second call error = %v", err)
	}
}

func TestCorruptSessionSelfHeals(t *testing.T) {
	store := newTestStore(t)

	// Write garbage straight into the session slot.
	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(sessionKey, []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("failed to corrupt session slot: %v", err)
	}

	if _, err := store.GetSession(); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession(corrupt) error = %v, want ErrSessionNotFound", err)
	}

	// The slot must have been cleared.
	err = store.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketSession).Get(sessionKey); data != nil {
			t.Errorf("session slot still holds %q after corrupt read", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
}

func TestListTicketsSkipsCorruptRecords(t *testing.T) {
	store := newTestStore(t)

	good := &types.Ticket{ID: "t-1", Title: "fine", Status: types.StatusOpen}
	if err := store.CreateTicket(good); err != nil {
		t.Fatalf("CreateTicket() error = %v", err)
	}

	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTickets).Put([]byte("t-corrupt"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("failed to plant corrupt record: %v", err)
	}

	tickets, err := store.ListTickets()
	if err != nil {
		t.Fatalf("ListTickets() error = %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != "t-1" {
		t.Errorf("ListTickets() = %d records, want only t-1", len(tickets))
	}
}

func TestTicketPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("NewBoltStore() error = %v", err)
	}
	ticket := &types.Ticket{
		ID:          "t-1",
		Title:       "survives restart",
		Description: "written before close",
		Status:      types.StatusInProgress,
		Priority:    types.PriorityHigh,
		CreatedAt:   time.Now().Truncate(time.Millisecond),
	}
	ticket.UpdatedAt = ticket.CreatedAt
	if err := store.CreateTicket(ticket); err != nil {
		t.Fatalf("CreateTicket() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewBoltStore(dir)
	if err != nil {
		t.Fatalf("NewBoltStore(reopen) error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetTicket("t-1")
	if err != nil {
		t.Fatalf("GetTicket() after reopen error = %v", err)
	}
	if got.Title != ticket.Title || got.Status != ticket.Status || got.Priority != ticket.Priority {
		t.Errorf("GetTicket() after reopen = %+v, want %+v", got, ticket)
	}
	if !got.CreatedAt.Equal(ticket.CreatedAt) {
		t.Errorf("CreatedAt after reopen = %v, want %v", got.CreatedAt, ticket.CreatedAt)
	}
}
