// Package session implements the state container at the center of
// shelfmap. It owns the single long-lived canonical state, drives the
// pending/fulfilled/rejected lifecycle of each asynchronous command, and
// keeps the projection and the persisted snapshot consistent with every
// state change.
//
// Commands suspend only at their network I/O boundary; once the I/O
// resolves, the state mutation, projection recomputation, and snapshot
// write execute as one uninterruptible step under the session lock. Two
// overlapping commands targeting the same product race last-write-wins;
// that is an acknowledged gap of the design, pinned by tests rather than
// serialized away.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shelfmap/shelfmap/internal/store"
	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/logging"
)

// Remote is the remote catalog client surface the session depends on.
// All calls are best-effort from the session's point of view except
// FetchAll, whose failure matters only when no other data exists.
type Remote interface {
	FetchAll(ctx context.Context) ([]catalog.Product, error)
	Create(ctx context.Context, p catalog.Product) error
	Update(ctx context.Context, p catalog.Product) error
	Delete(ctx context.Context, id int64) error
}

// Overrides is the local override store surface. Its mutations are
// authoritative for command outcomes.
type Overrides interface {
	Create(fields catalog.Fields) catalog.Product
	Update(id int64, fields catalog.Fields) (catalog.Product, bool)
	Delete(id int64) bool
	List() []catalog.Product
}

// Snapshots persists the canonical state after every settled mutation.
type Snapshots interface {
	SaveSnapshot(snap *store.Snapshot) error
}

// State is the canonical session state. FilteredProducts is always the
// projection of Products under Filters; it is never stale once a command
// has settled.
type State struct {
	Products         []catalog.Product
	FilteredProducts []catalog.Product
	Filters          catalog.FilterSettings
	Loading          bool
	Err              string
}

// Result reports a mutating command's outcome. The command itself
// succeeded if it returned without error; MirrorErr is set when the
// best-effort remote mirror failed, so callers can surface a soft warning
// instead of hiding the discrepancy.
type Result struct {
	Product   catalog.Product
	MirrorErr error
}

// Session is the state container. All state access goes through it.
type Session struct {
	mu    sync.Mutex
	state State

	overrides Overrides
	remote    Remote
	snapshots Snapshots
}

// Option configures a Session.
type Option func(*Session)

// WithSeed initializes the canonical product list and filter settings,
// typically from a previously persisted snapshot.
func WithSeed(products []catalog.Product, filters catalog.FilterSettings) Option {
	return func(s *Session) {
		s.state.Products = append([]catalog.Product(nil), products...)
		s.state.Filters = filters.Normalize()
	}
}

// New creates a session over the given collaborators. The projection is
// computed immediately so the initial state is already settled.
func New(overrides Overrides, remote Remote, snapshots Snapshots, opts ...Option) *Session {
	s := &Session{
		overrides: overrides,
		remote:    remote,
		snapshots: snapshots,
	}
	s.state.Filters = catalog.DefaultFilters()
	for _, opt := range opts {
		opt(s)
	}
	s.state.FilteredProducts = catalog.Project(s.state.Products, s.state.Filters)
	return s
}

// State returns a copy of the current canonical state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	out.Products = append([]catalog.Product(nil), s.state.Products...)
	out.FilteredProducts = append([]catalog.Product(nil), s.state.FilteredProducts...)
	return out
}

// Fetch reconciles the remote catalog with local overrides and replaces
// the canonical list wholesale. A remote failure degrades to local plus
// previously cached data; the command rejects only when that leaves
// nothing at all.
func (s *Session) Fetch(ctx context.Context) error {
	log := s.opLogger("fetch")
	s.begin()

	remoteProducts, err := s.remote.FetchAll(ctx)
	local := s.overrides.List()

	if err != nil {
		// The current canonical list doubles as the stale remote side;
		// Merge keeps local records authoritative either way.
		cached := s.cachedProducts()
		merged := catalog.Merge(local, cached)
		if len(merged) == 0 {
			msg := "remote catalog unavailable"
			s.reject(msg)
			log.Warn().Err(err).Msg("Fetch rejected, no cached or local data")
			return err
		}

		log.Warn().Err(err).
			Int("local", len(local)).
			Int("cached", len(cached)).
			Msg("Remote catalog unavailable, serving local and cached data")
		s.fulfill(func(st *State) {
			st.Products = merged
		})
		return nil
	}

	merged := catalog.Merge(local, remoteProducts)
	s.fulfill(func(st *State) {
		st.Products = merged
	})
	log.Debug().
		Int("local", len(local)).
		Int("remote", len(remoteProducts)).
		Int("canonical", len(merged)).
		Msg("Catalog reconciled")
	return nil
}

// Create authors a new local record and prepends it to the canonical
// list. The remote mirror is best-effort; its failure is reported on the
// Result, never as the command's outcome.
func (s *Session) Create(ctx context.Context, fields catalog.Fields) (Result, error) {
	log := s.opLogger("create")
	s.begin()

	record := s.overrides.Create(fields)
	res := Result{Product: record}

	if err := s.remote.Create(ctx, record); err != nil {
		res.MirrorErr = err
		log.Warn().Err(err).
			Int64("id", record.ID).
			Msg("Remote mirror create failed, local record is authoritative")
	}

	s.fulfill(func(st *State) {
		st.Products = append([]catalog.Product{record}, st.Products...)
	})
	log.Debug().Int64("id", record.ID).Str("title", record.Title).Msg("Product created")
	return res, nil
}

// Update merges fields into the canonical record with the given ID. The
// override store only follows suit for records it owns; an edit to a
// purely remote record lives in canonical state until the next fetch.
func (s *Session) Update(ctx context.Context, id int64, fields catalog.Fields) (Result, error) {
	log := s.opLogger("update")
	s.begin()

	s.overrides.Update(id, fields)

	var res Result
	if current, ok := s.findProduct(id); ok {
		current.Apply(fields)
		if fields.Stock != nil {
			current.InStock = current.Stock > 0
		}
		res.Product = current

		if err := s.remote.Update(ctx, current); err != nil {
			res.MirrorErr = err
			log.Warn().Err(err).
				Int64("id", id).
				Msg("Remote mirror update failed, local record is authoritative")
		}
	}

	s.fulfill(func(st *State) {
		for i := range st.Products {
			if st.Products[i].ID != id {
				continue
			}
			st.Products[i].Apply(fields)
			if fields.Stock != nil {
				st.Products[i].InStock = st.Products[i].Stock > 0
			}
			res.Product = st.Products[i]
			break
		}
	})
	log.Debug().Int64("id", id).Msg("Product updated")
	return res, nil
}

// Delete removes the record with the given ID from the canonical list.
// It acts on canonical state, so an ID present only remotely is removed
// as well; the override store drops the record only if it owns it.
func (s *Session) Delete(ctx context.Context, id int64) (Result, error) {
	log := s.opLogger("delete")
	s.begin()

	s.overrides.Delete(id)

	var res Result
	if err := s.remote.Delete(ctx, id); err != nil {
		res.MirrorErr = err
		log.Warn().Err(err).
			Int64("id", id).
			Msg("Remote mirror delete failed, local deletion is authoritative")
	}

	s.fulfill(func(st *State) {
		kept := st.Products[:0:0]
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		st.Products = kept
	})
	log.Debug().Int64("id", id).Msg("Product deleted")
	return res, nil
}

// SetSearchTerm updates the search filter, recomputes the projection, and
// persists. Filter commands are synchronous and never fail.
func (s *Session) SetSearchTerm(term string) {
	s.applySync(func(st *State) {
		st.Filters.SearchTerm = term
	})
}

// SetSelectedCategory updates the category filter.
func (s *Session) SetSelectedCategory(category string) {
	s.applySync(func(st *State) {
		st.Filters.SelectedCategory = category
	})
}

// SetSorting selects the sort field. Selecting the current field again
// toggles the direction; selecting a new field resets to ascending.
func (s *Session) SetSorting(field catalog.SortField) {
	s.applySync(func(st *State) {
		if st.Filters.SortBy == field {
			if st.Filters.SortOrder == catalog.SortAsc {
				st.Filters.SortOrder = catalog.SortDesc
			} else {
				st.Filters.SortOrder = catalog.SortAsc
			}
			return
		}
		st.Filters.SortBy = field
		st.Filters.SortOrder = catalog.SortAsc
	})
}

// begin marks a command pending: loading set, previous error cleared.
func (s *Session) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

// fulfill applies a command's effect, recomputes the projection, rewrites
// the snapshot, and clears the loading flag, all as one step.
func (s *Session) fulfill(mutate func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.state)
	s.state.FilteredProducts = catalog.Project(s.state.Products, s.state.Filters)
	s.state.Loading = false
	s.state.Err = ""
	s.persistLocked()
}

// reject settles a command with an error message, leaving products and
// the projection untouched.
func (s *Session) reject(msg string) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = msg
	s.mu.Unlock()
}

// applySync runs a synchronous filter/sort command: no pending state, no
// rejection path.
func (s *Session) applySync(mutate func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(&s.state)
	s.state.FilteredProducts = catalog.Project(s.state.Products, s.state.Filters)
	s.persistLocked()
}

// persistLocked rewrites the canonical snapshot. The snapshot is a cache:
// a write failure is logged and the command still succeeds.
func (s *Session) persistLocked() {
	if s.snapshots == nil {
		return
	}
	snap := &store.Snapshot{
		Products:         append([]catalog.Product(nil), s.state.Products...),
		SearchTerm:       s.state.Filters.SearchTerm,
		SelectedCategory: s.state.Filters.SelectedCategory,
		SortBy:           s.state.Filters.SortBy,
		SortOrder:        s.state.Filters.SortOrder,
	}
	if err := s.snapshots.SaveSnapshot(snap); err != nil {
		logging.Warn().
			Err(err).
			Int("products", len(snap.Products)).
			Msg("Failed to persist catalog snapshot")
	}
}

// cachedProducts returns the current canonical list.
func (s *Session) cachedProducts() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.state.Products...)
}

// findProduct returns a copy of the canonical record with the given ID.
func (s *Session) findProduct(id int64) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// opLogger tags a command's log events with a correlation id.
func (s *Session) opLogger(op string) zerolog.Logger {
	return logging.With().
		Str("op", op).
		Str("op_id", uuid.NewString()).
		Logger()
}
