/*
Package storage provides BoltDB-backed state persistence for the
application's users, tickets, and the single session slot.

The package implements the Store interface using BoltDB (bbolt) as the
underlying database. All data is serialized as JSON and stored in
separate buckets:

	┌──────────────── BOLTDB STORAGE ────────────────┐
	│                                                 │
	│  File: <dataDir>/ticketapp.db                   │
	│                                                 │
	│  ┌──────────────────────────────┐               │
	│  │ users    (keyed by user ID)  │               │
	│  │ tickets  (keyed by ticket ID)│               │
	│  │ session  (fixed key)         │               │
	│  └──────────────────────────────┘               │
	│                                                 │
	│  Read:  db.View()   - concurrent snapshots     │
	│  Write: db.Update() - serialized, fsync commit │
	└─────────────────────────────────────────────────┘

# Design

Tickets are indexed by ID for direct lookup, while insertion order is
preserved through a per-bucket sequence number assigned inside the
create transaction; ListTickets sorts by it. User lookup by email is a
cursor scan, which is adequate for the collection sizes this
application holds.

The session bucket holds at most one entry under a fixed key. A slot
that fails to deserialize is deleted and reported as absent rather
than surfaced as an error, so a corrupted session can never wedge
startup.

BoltDB holds an exclusive file lock and serializes writers, which is
the entirety of this application's concurrency control: a second
process opening the same database blocks rather than racing. There is
no cross-process optimistic concurrency; multi-writer support would be
an explicit extension.

# Usage

	store, err := storage.NewBoltStore(dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	err = store.CreateTicket(&types.Ticket{
		ID:     uuid.New().String(),
		Title:  "fix login redirect",
		Status: types.StatusOpen,
	})
*/
package storage
