// Package shelfmap provides the entry point for the shelfmap product
// catalog manager. It wires the durable snapshot store, the local override
// store, the remote catalog client, and the session state container into
// one client.
//
// Shelfmap is local-first: records the user creates or edits are durable
// and authoritative regardless of remote availability, while the remote
// catalog serves as best-effort enrichment.
//
// Example usage:
//
//	client, err := shelfmap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Reconcile the remote catalog with local edits
//	if err := client.Session().Fetch(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read the projected view
//	state := client.Session().State()
//	for _, p := range state.FilteredProducts {
//	    fmt.Printf("%d  %s  %.2f\n", p.ID, p.Title, p.Price)
//	}
package shelfmap

import (
	"context"

	"github.com/shelfmap/shelfmap/internal/overrides"
	"github.com/shelfmap/shelfmap/internal/remote"
	"github.com/shelfmap/shelfmap/internal/session"
	"github.com/shelfmap/shelfmap/internal/store"
	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/errors"
	"github.com/shelfmap/shelfmap/pkg/logging"
)

// Client composes the shelfmap components over one state directory.
type Client struct {
	options   *options
	store     *store.Store
	overrides *overrides.Store
	remote    *remote.Client
	session   *session.Session
}

// New creates a client, seeding the session from any persisted snapshots.
// Missing or unreadable snapshots are never fatal; they load as empty
// state.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		options: defaults().apply(opts...),
	}

	c.store = store.New(c.options.stateDir)

	seedProducts, seedFilters := c.loadSnapshot()
	records := c.loadOverrides()

	overrideOpts := []overrides.Option{overrides.WithRecords(records)}
	if c.options.clock != nil {
		overrideOpts = append(overrideOpts, overrides.WithClock(c.options.clock))
	}
	c.overrides = overrides.New(c.store, overrideOpts...)

	remoteOpts := []remote.Option{remote.WithBaseURL(c.options.apiURL)}
	if c.options.httpClient != nil {
		remoteOpts = append(remoteOpts, remote.WithHTTPClient(c.options.httpClient))
	}
	if c.options.rng != nil {
		remoteOpts = append(remoteOpts, remote.WithRand(c.options.rng))
	}
	c.remote = remote.New(remoteOpts...)

	c.session = session.New(c.overrides, c.remote, c.store,
		session.WithSeed(seedProducts, seedFilters))

	logging.Debug().
		Str("state_dir", c.options.stateDir).
		Str("api_url", c.options.apiURL).
		Int("seed_products", len(seedProducts)).
		Int("override_records", len(records)).
		Msg("Shelfmap client ready")
	return c, nil
}

// Session returns the state container.
func (c *Client) Session() *session.Session {
	return c.session
}

// Categories returns the remote category list, or the fixed default list
// when the remote service is unusable.
func (c *Client) Categories(ctx context.Context) []string {
	return c.remote.Categories(ctx)
}

// FetchOne retrieves a single remote record by id.
func (c *Client) FetchOne(ctx context.Context, id int64) (catalog.Product, error) {
	return c.remote.FetchOne(ctx, id)
}

// loadSnapshot reads the persisted canonical snapshot, falling back to
// empty defaults.
func (c *Client) loadSnapshot() ([]catalog.Product, catalog.FilterSettings) {
	snap, err := c.store.LoadSnapshot()
	if err != nil {
		if errors.IsStorageRead(err) {
			logging.Debug().Err(err).Msg("No usable catalog snapshot, starting empty")
		}
		return nil, catalog.DefaultFilters()
	}
	return snap.Products, snap.Filters()
}

// loadOverrides reads the persisted override records, falling back to an
// empty sequence.
func (c *Client) loadOverrides() []catalog.Product {
	records, err := c.store.LoadOverrides()
	if err != nil {
		if errors.IsStorageRead(err) {
			logging.Debug().Err(err).Msg("No usable overrides snapshot, starting empty")
		}
		return nil
	}
	return records
}
