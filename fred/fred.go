// Package fred fetches U.S. Treasury constant maturity yields from FRED, the
// Federal Reserve Economic Data service of the St. Louis Fed.
//
// Two transports are available. The graph CSV download needs no credentials
// and returns all eleven series in one request. The observations JSON API
// needs an API key and is queried once per series.
package fred

import (
	"errors"
	"net/http"
	"time"

	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
	"golang.org/x/time/rate"
)

const (
	defaultGraphURL = "https://fred.stlouisfed.org/graph/fredgraph.csv"
	defaultAPIURL   = "https://api.stlouisfed.org/fred"

	defaultHTTPTimeout = 30 * time.Second
)

// ErrNoObservations is returned when FRED answers with no observation at all.
var ErrNoObservations = errors.New("no observations")

type options struct {
	apiKey   string
	graphURL string
	apiURL   string
	client   *http.Client
	cacheDir string
	period   date.Period
	limiter  *rate.Limiter
}

// Option configures a provider.
type Option func(*options)

// WithAPIKey selects the observations JSON API, authenticated with key.
// An empty key keeps the graph CSV download.
func WithAPIKey(key string) Option { return func(o *options) { o.apiKey = key } }

// WithHTTPClient sets the http client used for all requests.
func WithHTTPClient(c *http.Client) Option { return func(o *options) { o.client = c } }

// WithDiskCache stores successful responses in dir. Entries expire at the end
// of the current period (e.g. every day with date.Daily).
func WithDiskCache(dir string, p date.Period) Option {
	return func(o *options) { o.cacheDir, o.period = dir, p }
}

// WithGraphURL overrides the graph CSV endpoint.
func WithGraphURL(u string) Option { return func(o *options) { o.graphURL = u } }

// WithAPIURL overrides the JSON API root.
func WithAPIURL(u string) Option { return func(o *options) { o.apiURL = u } }

// WithRateLimit paces the JSON API requests.
func WithRateLimit(l *rate.Limiter) Option { return func(o *options) { o.limiter = l } }

func newOptions(opts []Option) *options {
	o := &options{
		graphURL: defaultGraphURL,
		apiURL:   defaultAPIURL,
		// FRED allows 120 requests per minute.
		limiter: rate.NewLimiter(rate.Every(time.Minute/120), yieldcurve.NumMaturities),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if o.cacheDir != "" {
		base := o.client.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c := *o.client
		c.Transport = &diskCache{base: base, dir: o.cacheDir, period: o.period}
		o.client = &c
	}
	return o
}

// NewProvider returns the FRED provider matching the options: the JSON API
// client when an API key is set, the graph CSV client otherwise.
func NewProvider(opts ...Option) yieldcurve.Provider {
	o := newOptions(opts)
	if o.apiKey != "" {
		return &APIClient{opts: o}
	}
	return &GraphClient{opts: o}
}
