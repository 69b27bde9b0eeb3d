package yieldcurve

import (
	"context"
	"sync"

	"github.com/etnz/yieldcurve/date"
	log "github.com/sirupsen/logrus"
)

type memoEntry struct {
	series *Series
	err    error
}

// Memo is a Provider that fetches each date range at most once.
//
// Entries are never evicted: a Memo lives as long as the session that uses it
// and only ever sees a handful of ranges. Failures are memoized as well, the
// session keeps working on the empty series it got the first time.
type Memo struct {
	provider Provider

	mu      sync.Mutex
	entries map[date.Range]memoEntry
}

// NewMemo returns a Memo in front of p.
func NewMemo(p Provider) *Memo {
	return &Memo{provider: p, entries: make(map[date.Range]memoEntry)}
}

// Fetch returns the memoized result for r, calling the underlying provider on
// the first request only.
func (m *Memo) Fetch(ctx context.Context, r date.Range) (*Series, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[r]; ok {
		log.Debugf("memo hit for %s", r)
		return e.series, e.err
	}
	s, err := m.provider.Fetch(ctx, r)
	if ctx.Err() != nil {
		// an interrupted fetch says nothing about the source
		return s, err
	}
	m.entries[r] = memoEntry{series: s, err: err}
	return s, err
}

// Len returns the number of memoized ranges.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
