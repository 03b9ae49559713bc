package remote

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmap/shelfmap/pkg/catalog"
	"github.com/shelfmap/shelfmap/pkg/errors"
)

const remotePayload = `[
	{"id": 1, "title": "Backpack", "price": 109.95,
	 "description": "Fits 15 inch laptops", "category": "men's clothing",
	 "image": "https://example.com/backpack.png",
	 "rating": {"rate": 3.9, "count": 120}},
	{"id": 2, "title": "T-Shirt", "price": 22.3,
	 "description": "Slim fit", "category": "men's clothing",
	 "image": "https://example.com/shirt.png",
	 "rating": {"rate": 4.1, "count": 259}}
]`

func newTestClient(t *testing.T, handler http.Handler, seed int64) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(
		WithBaseURL(srv.URL),
		WithRand(rand.New(rand.NewSource(seed))),
	)
}

func TestFetchAllSynthesizesInventory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(remotePayload))
	}), 42)

	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	// The same seed replays the same draws: stock first, then the
	// in-stock roll, per product in response order.
	rng := rand.New(rand.NewSource(42))
	for i, p := range products {
		wantStock := 1 + rng.Intn(100)
		wantInStock := rng.Float64() < 0.9
		assert.Equalf(t, wantStock, p.Stock, "product %d stock", i)
		assert.Equalf(t, wantInStock, p.InStock, "product %d inStock", i)
		assert.GreaterOrEqual(t, p.Stock, 1)
		assert.LessOrEqual(t, p.Stock, 100)
	}

	assert.Equal(t, "Backpack", products[0].Title)
	assert.Equal(t, 3.9, products[0].Rating.Rate)
	assert.Equal(t, 120, products[0].Rating.Count)
}

func TestFetchAllServerErrorIsRemoteUnavailable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}), 1)

	_, err := client.FetchAll(context.Background())
	assert.True(t, errors.IsRemoteUnavailable(err))
}

func TestFetchAllNetworkFailureIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := New(WithBaseURL(srv.URL))

	_, err := client.FetchAll(context.Background())
	assert.True(t, errors.IsRemoteUnavailable(err))
}

func TestFetchOne(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(catalog.Product{ID: 7, Title: "Lamp"})
	}), 3)

	product, err := client.FetchOne(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.NotZero(t, product.Stock)
}

func TestFetchOneMissingIDIsNotFound(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler(), 1)

	_, err := client.FetchOne(context.Background(), 999)
	assert.True(t, errors.IsNotFound(err))
}

func TestMutationMirrors(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody catalog.Product
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
	}), 1)

	p := catalog.Product{ID: 1700000000000, Title: "Desk", Price: 120}

	require.NoError(t, client.Create(context.Background(), p))
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/products", gotPath)
	assert.Equal(t, "Desk", gotBody.Title)

	require.NoError(t, client.Update(context.Background(), p))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/products/1700000000000", gotPath)

	require.NoError(t, client.Delete(context.Background(), p.ID))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/products/1700000000000", gotPath)
}

func TestMutationFailureClassifies(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}), 1)

	err := client.Create(context.Background(), catalog.Product{ID: 1})
	assert.True(t, errors.IsRemoteUnavailable(err))
}

func TestCategories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		_, _ = w.Write([]byte(`["electronics","jewelery"]`))
	}), 1)

	got := client.Categories(context.Background())
	assert.Equal(t, []string{"electronics", "jewelery"}, got)
}

func TestCategoriesFallsBackOnFailure(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}), 1)

	got := client.Categories(context.Background())
	assert.Equal(t, DefaultCategories, got)
	assert.Equal(t, int32(1), calls.Load())
}
