package yieldcurve

import (
	"iter"

	"github.com/etnz/yieldcurve/date"
)

// Yield is an optional yield percentage.
type Yield struct {
	Value float64
	Valid bool
}

// Pct returns a valid Yield of v percent.
func Pct(v float64) Yield { return Yield{Value: v, Valid: true} }

// Record holds the yields published on one date, indexed like Maturities.
type Record [NumMaturities]Yield

// Count returns the number of maturities with a value.
func (r Record) Count() int {
	n := 0
	for _, y := range r {
		if y.Valid {
			n++
		}
	}
	return n
}

// Series is a chronological series of daily yield records.
//
// Dates are unique. A date can exist with some or even all of its maturities
// missing: the source publishes a row for days it has no observation for.
// A Series is filled by a Provider and treated as read-only afterwards.
type Series struct {
	records date.History[Record]
}

// NewSeries returns an empty series.
func NewSeries() *Series { return new(Series) }

// Append sets the whole record for a date.
//
// When the same date is appended twice, the later record replaces the earlier
// one, so duplicated rows in a payload resolve to the last one received.
func (s *Series) Append(on date.Date, r Record) *Series {
	s.records.Append(on, r)
	return s
}

// Observe sets the yield of the i-th maturity for a date, registering that
// date if needed. An invalid y still registers the date.
func (s *Series) Observe(on date.Date, i int, y Yield) *Series {
	s.records.Update(on, func(r *Record) {
		if y.Valid {
			r[i] = y
		}
	})
	return s
}

// Len returns the number of dates in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return s.records.Len()
}

// IsEmpty reports whether the series has no date at all. A nil series is empty.
func (s *Series) IsEmpty() bool { return s.Len() == 0 }

// Get returns the record published on exactly that date.
func (s *Series) Get(on date.Date) (Record, bool) { return s.records.Get(on) }

// AsOf returns the record on that date or, failing that, the latest one
// before it, together with the date it was published on.
func (s *Series) AsOf(on date.Date) (date.Date, Record, bool) { return s.records.AsOf(on) }

// Bounds returns the first and last dates of the series.
// It returns false on an empty series.
func (s *Series) Bounds() (date.Range, bool) {
	first, _, ok := s.records.First()
	if !ok {
		return date.Range{}, false
	}
	last, _, _ := s.records.Latest()
	return date.Range{From: first, To: last}, true
}

// Dates returns an iterator over the dates of the series, in chronological order.
func (s *Series) Dates() iter.Seq[date.Date] { return s.records.Days() }

// Records returns an iterator over all date/record pairs, in chronological order.
func (s *Series) Records() iter.Seq2[date.Date, Record] { return s.records.Values() }
