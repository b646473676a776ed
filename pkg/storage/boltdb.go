package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ticketapp/ticketapp/pkg/types"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketUsers   = []byte("users")
	bucketTickets = []byte("tickets")
	bucketSession = []byte("session")

	// Fixed key for the single session slot
	sessionKey = []byte("current")
)

// BoltStore implements Store interface using BoltDB
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a new BoltDB-backed store
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "ticketapp.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketUsers,
			bucketTickets,
			bucketSession,
		}

		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// User operations

func (s *BoltStore) CreateUser(user *types.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put([]byte(user.ID), data)
	})
}

func (s *BoltStore) GetUser(id string) (*types.User, error) {
	var user types.User
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		data := b.Get([]byte(id))
		if data == nil {
			return ErrUserNotFound
		}
		return json.Unmarshal(data, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail scans the user bucket for a matching email.
// Emails are unique within the collection; first match wins.
func (s *BoltStore) GetUserByEmail(email string) (*types.User, error) {
	var found *types.User
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var user types.User
			if err := json.Unmarshal(v, &user); err != nil {
				continue
			}
			if user.Email == email {
				found = &user
				return nil
			}
		}
		return ErrUserNotFound
	})
	return found, err
}

// ListUsers returns all users. Records that fail to deserialize are
// skipped; corrupt data is treated as absent, never fatal.
func (s *BoltStore) ListUsers() ([]*types.User, error) {
	var users []*types.User
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var user types.User
			if err := json.Unmarshal(v, &user); err != nil {
				continue
			}
			users = append(users, &user)
		}
		return nil
	})
	return users, err
}

// Ticket operations

// CreateTicket persists a new ticket. The bucket sequence is assigned
// to ticket.Seq inside the transaction so that ListTickets can return
// the collection in insertion order while keys stay indexed by ID.
func (s *BoltStore) CreateTicket(ticket *types.Ticket) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTickets)
		if ticket.Seq == 0 {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			ticket.Seq = seq
		}
		data, err := json.Marshal(ticket)
		if err != nil {
			return err
		}
		return b.Put([]byte(ticket.ID), data)
	})
}

func (s *BoltStore) GetTicket(id string) (*types.Ticket, error) {
	var ticket types.Ticket
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTickets)
		data := b.Get([]byte(id))
		if data == nil {
			return ErrTicketNotFound
		}
		return json.Unmarshal(data, &ticket)
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListTickets returns the full collection in insertion order.
// Records that fail to deserialize are skipped; corrupt data is
// treated as absent, never fatal.
func (s *BoltStore) ListTickets() ([]*types.Ticket, error) {
	var tickets []*types.Ticket
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTickets)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var ticket types.Ticket
			if err := json.Unmarshal(v, &ticket); err != nil {
				continue
			}
			tickets = append(tickets, &ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Keys iterate in ID order; callers expect insertion order.
	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].Seq < tickets[j].Seq
	})
	return tickets, nil
}

// UpdateTicket overwrites an existing ticket. The ticket must already
// exist; use CreateTicket for inserts so sequence numbers stay intact.
func (s *BoltStore) UpdateTicket(ticket *types.Ticket) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTickets)
		if b.Get([]byte(ticket.ID)) == nil {
			return ErrTicketNotFound
		}
		data, err := json.Marshal(ticket)
		if err != nil {
			return err
		}
		return b.Put([]byte(ticket.ID), data)
	})
}

// DeleteTicket removes a ticket and reports whether a record was
// actually deleted. Deleting a missing ID is not an error.
func (s *BoltStore) DeleteTicket(id string) (bool, error) {
	removed := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTickets)
		if b.Get([]byte(id)) == nil {
			return nil
		}
		removed = true
		return b.Delete([]byte(id))
	})
	return removed, err
}

// Session operations

// SaveSession writes the session snapshot under the fixed slot key.
func (s *BoltStore) SaveSession(user *types.User) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		return b.Put(sessionKey, data)
	})
}

// GetSession reads the session slot. A corrupt slot is self-healing:
// the entry is removed and ErrSessionNotFound is returned, so callers
// never see a parse failure as a fatal condition.
func (s *BoltStore) GetSession() (*types.User, error) {
	var user types.User
	corrupt := false
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		data := b.Get(sessionKey)
		if data == nil {
			return ErrSessionNotFound
		}
		if err := json.Unmarshal(data, &user); err != nil {
			corrupt = true
			return ErrSessionNotFound
		}
		return nil
	})
	if corrupt {
		_ = s.ClearSession()
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ClearSession removes the session slot. Idempotent.
func (s *BoltStore) ClearSession() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSession)
		return b.Delete(sessionKey)
	})
}
