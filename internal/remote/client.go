// Package remote implements the HTTP client for the external product
// catalog service. The remote service is a best-effort enrichment source:
// fetch failures degrade the session to local-only data, and mutation
// mirrors never decide a command's outcome.
//
// The remote schema carries no inventory fields, so the client synthesizes
// stock and in-stock placeholders from an injectable random source. The
// distribution parameters (stock uniform over [1,100], in-stock with
// probability 0.9) are part of the contract, not incidental.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/constants"
	"github.com/shelfmap/shelfmap/pkg/errors"
	"github.com/shelfmap/shelfmap/pkg/logging"
)

// DefaultCategories is the fallback when the category endpoint is
// unreachable.
var DefaultCategories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// inStockProbability is the chance a remote record is marked in stock.
const inStockProbability = 0.9

// maxSynthesizedStock bounds the uniform [1, maxSynthesizedStock] stock draw.
const maxSynthesizedStock = 100

// Client talks to the remote catalog service.
type Client struct {
	baseURL string
	http    *http.Client

	// rng backs the stock synthesis; guarded because rand.Rand is not
	// safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the remote service base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithRand injects the random source used for stock synthesis so tests
// can assert exact values.
func WithRand(rng *rand.Rand) Option {
	return func(c *Client) {
		c.rng = rng
	}
}

// New creates a remote catalog client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: constants.DefaultAPIURL,
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchAll retrieves the remote catalog and synthesizes inventory fields
// for each record. Failure classifies as ErrRemoteUnavailable; callers
// treat it as non-fatal.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}

	for i := range products {
		c.synthesizeInventory(&products[i])
	}
	return products, nil
}

// FetchOne retrieves a single remote record with the same synthesis rule.
// A missing ID surfaces as ErrNotFound.
func (c *Client) FetchOne(ctx context.Context, id int64) (catalog.Product, error) {
	var product catalog.Product
	if err := c.get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		if errors.IsNotFound(err) {
			return catalog.Product{}, errors.NewNotFoundError("product", id)
		}
		return catalog.Product{}, err
	}

	c.synthesizeInventory(&product)
	return product, nil
}

// Create mirrors a locally created record to the remote service.
func (c *Client) Create(ctx context.Context, p catalog.Product) error {
	return c.send(ctx, http.MethodPost, "/products", p)
}

// Update mirrors a locally updated record to the remote service.
func (c *Client) Update(ctx context.Context, p catalog.Product) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), p)
}

// Delete mirrors a local deletion to the remote service.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
}

// Categories retrieves the remote category list, falling back to
// DefaultCategories when the endpoint is unusable.
func (c *Client) Categories(ctx context.Context) []string {
	var categories []string
	if err := c.get(ctx, "/products/categories", &categories); err != nil {
		logging.Warn().
			Err(err).
			Msg("Category fetch failed, using default category list")
		return append([]string(nil), DefaultCategories...)
	}
	return categories
}

// synthesizeInventory fills the inventory placeholders the remote schema
// lacks.
func (c *Client) synthesizeInventory(p *catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p.Stock = 1 + c.rng.Intn(maxSynthesizedStock)
	p.InStock = c.rng.Float64() < inStockProbability
}

// get performs a GET request and decodes the JSON response into target.
func (c *Client) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.WrapAPI(path, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(path, 0, err)
	}
	return decodeResponse(resp, path, target)
}

// send performs a mutating request; the response body is ignored beyond
// success or failure.
func (c *Client) send(ctx context.Context, method, path string, body any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WrapParse("json", path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.WrapAPI(path, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(path, 0, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAPIError(path, resp.StatusCode, resp.Status)
	}
	return nil
}

// decodeResponse decodes a JSON response into the target structure.
func decodeResponse(resp *http.Response, path string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(path, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}
