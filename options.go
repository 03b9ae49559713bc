package shelfmap

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/shelfmap/shelfmap/internal/config"
)

// options are the configurable settings for a Client.
type options struct {
	stateDir   string
	apiURL     string
	httpClient *http.Client
	rng        *rand.Rand
	clock      func() time.Time
}

// Option is a function that configures a Client.
type Option func(*options)

// defaults returns options resolved from configuration and environment.
func defaults() *options {
	return &options{
		stateDir: config.StateDir(),
		apiURL:   config.APIURL(),
	}
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStateDir overrides the snapshot state directory.
func WithStateDir(dir string) Option {
	return func(o *options) {
		o.stateDir = dir
	}
}

// WithAPIURL overrides the remote catalog service base URL.
func WithAPIURL(url string) Option {
	return func(o *options) {
		o.apiURL = url
	}
}

// WithHTTPClient overrides the HTTP client used for remote calls.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) {
		o.httpClient = h
	}
}

// WithRand injects the random source used to synthesize remote inventory
// fields.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithClock injects the time source used to derive local record IDs.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}
