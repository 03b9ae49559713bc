// Package overrides owns the records a user has created or edited locally.
// These records are the durable source of truth for anything the user has
// touched: their IDs always win during reconciliation, and every mutation
// is persisted on the same turn it is applied.
package overrides

import (
	"sync"
	"time"

	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/logging"
)

// Persister receives the full record sequence after every mutation.
type Persister interface {
	SaveOverrides(records []catalog.Product) error
}

// Store holds locally authored records, most-recently-created-first.
// That ordering is an observable contract relied on by reconciliation,
// not an implementation accident.
type Store struct {
	mu      sync.Mutex
	records []catalog.Product
	persist Persister
	now     func() time.Time
	lastID  int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source used to derive new record IDs.
// Tests use a fixed clock to assert exact identities.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithRecords seeds the store with previously persisted records in their
// stored order.
func WithRecords(records []catalog.Product) Option {
	return func(s *Store) {
		s.records = append([]catalog.Product(nil), records...)
	}
}

// New creates an override store that persists through p.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persist: p,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Seeded records bound the ID clock so a same-millisecond create
	// after restart still gets a strictly greater ID.
	for _, r := range s.records {
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}
	return s
}

// Create assigns a new identity, derives InStock, prepends the record, and
// persists. The ID is the clock's Unix-millisecond reading, bumped when
// necessary so every issued ID is strictly greater than the last.
func (s *Store) Create(fields catalog.Fields) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	p := catalog.Product{ID: id}
	p.Apply(fields)
	p.InStock = p.Stock > 0

	s.records = append([]catalog.Product{p}, s.records...)
	s.save()
	return p
}

// Update merges fields into the record with the given ID and persists.
// An absent ID is a no-op, not an error: this layer only mutates records
// it already owns.
func (s *Store) Update(id int64, fields catalog.Fields) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records[i].Apply(fields)
		if fields.Stock != nil {
			s.records[i].InStock = s.records[i].Stock > 0
		}
		s.save()
		return s.records[i], true
	}
	return catalog.Product{}, false
}

// Delete removes the record with the given ID if present and persists.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		s.records = append(s.records[:i:i], s.records[i+1:]...)
		s.save()
		return true
	}
	return false
}

// List returns the current sequence in unaltered order.
func (s *Store) List() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.records...)
}

// save persists the current sequence. Persistence is a cache: a write
// failure is logged and the in-memory mutation stands.
func (s *Store) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveOverrides(append([]catalog.Product(nil), s.records...)); err != nil {
		logging.Warn().
			Err(err).
			Int("records", len(s.records)).
			Msg("Failed to persist local overrides")
	}
}
