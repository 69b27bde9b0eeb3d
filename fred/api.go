package fred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentRequests bounds the number of series downloaded at once.
const maxConcurrentRequests = 4

// APIClient queries the FRED observations API, one request per maturity.
type APIClient struct {
	opts *options
}

// observation is one entry of the observations payload.
//
//	{"realtime_start":"2024-01-05","realtime_end":"2024-01-05","date":"2024-01-02","value":"4.33"}
type observation struct {
	Date  date.Date `json:"date"`
	Value string    `json:"value"`
}

// Fetch implements yieldcurve.Provider. It fails as soon as one series fails.
func (c *APIClient) Fetch(ctx context.Context, r date.Range) (*yieldcurve.Series, error) {
	var results [yieldcurve.NumMaturities][]observation

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRequests)
	for i, m := range yieldcurve.Maturities {
		g.Go(func() error {
			obs, err := c.observations(ctx, m.SeriesID, r)
			if err != nil {
				return fmt.Errorf("failed to get series %s: %w", m.SeriesID, err)
			}
			results[i] = obs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := yieldcurve.NewSeries()
	for i, obs := range results {
		for _, o := range obs {
			if !r.Contains(o.Date) {
				continue
			}
			y, err := parseValue(o.Value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s for date %s: %w", yieldcurve.Maturities[i].SeriesID, o.Date, err)
			}
			s.Observe(o.Date, i, y)
		}
	}
	if s.IsEmpty() {
		return nil, fmt.Errorf("FRED API for %s: %w", r, ErrNoObservations)
	}
	return s, nil
}

// observations downloads one series.
func (c *APIClient) observations(ctx context.Context, seriesID string, r date.Range) ([]observation, error) {
	// https://fred.stlouisfed.org/docs/api/fred/series_observations.html
	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("observation_start", r.From.String())
	q.Set("observation_end", r.To.String())
	q.Set("file_type", "json")
	q.Set("api_key", c.opts.apiKey)

	if err := c.opts.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	log.Infof("Downloading %s from FRED API for %s", seriesID, r)
	body, err := get(ctx, c.opts.client, c.opts.apiURL+"/series/observations?"+q.Encode())
	var se *statusError
	if errors.As(err, &se) {
		if msg, ok := apiErrorMessage(se.Body); ok {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
	}
	if err != nil {
		return nil, err
	}

	var payload struct {
		Observations []observation `json:"observations"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode observations: %w", err)
	}
	return payload.Observations, nil
}

// apiErrorMessage extracts the message of a FRED error payload:
//
//	{"error_code":400,"error_message":"Bad Request.  The value for variable api_key is not registered."}
func apiErrorMessage(body []byte) (string, bool) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return "", false
	}
	jval, err := jsonpath.Get("$.error_message", jobj)
	if err != nil {
		return "", false
	}
	msg, ok := jval.(string)
	return msg, ok && msg != ""
}
