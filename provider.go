package yieldcurve

import (
	"context"
	"fmt"

	"github.com/etnz/yieldcurve/date"
)

// DefaultYears is the length of the default fetch window.
const DefaultYears = 5

// Provider fetches the yield series over a closed date range.
type Provider interface {
	Fetch(ctx context.Context, r date.Range) (*Series, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, r date.Range) (*Series, error)

func (f ProviderFunc) Fetch(ctx context.Context, r date.Range) (*Series, error) { return f(ctx, r) }

// Load fetches the series for r and never returns a nil series.
//
// Any provider failure degrades to an empty series; the error is still
// returned so that the caller can notify the user.
func Load(ctx context.Context, p Provider, r date.Range) (*Series, error) {
	s, err := p.Fetch(ctx, r)
	if err != nil {
		return NewSeries(), fmt.Errorf("error fetching yield data for %s: %w", r, err)
	}
	if s == nil {
		return NewSeries(), nil
	}
	return s, nil
}

// DefaultRange returns the fetch window ending yesterday and spanning years years.
func DefaultRange(today date.Date, years int) date.Range {
	end := today.Add(-1)
	return date.LastDays(end, 365*years)
}

// PickerBounds returns the range of dates a user may select.
//
// It is the span of the series, or from 2000-01-01 to today when the series is
// empty.
func PickerBounds(s *Series, today date.Date) date.Range {
	if s != nil {
		if b, ok := s.Bounds(); ok {
			return b
		}
	}
	return date.Range{From: date.New(2000, 1, 1), To: today}
}
