package date

import (
	"iter"
	"slices"
)

type entry[T any] struct {
	on Date
	v  T
}

// History is a chronological series of values, at most one per day.
// The zero value is an empty history ready to use.
type History[T any] struct {
	entries []entry[T]
}

// search returns where day is, or would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.entries, day, func(e entry[T], d Date) int { return e.on.Compare(d) })
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.entries) }

// Append sets the value of a day. A value already set on that day is
// replaced, the last one appended wins.
func (h *History[T]) Append(on Date, v T) *History[T] {
	return h.Update(on, func(p *T) { *p = v })
}

// Update calls f with the value of a day, which starts from the zero value
// when the day is new.
func (h *History[T]) Update(on Date, f func(*T)) *History[T] {
	i, found := h.search(on)
	if !found {
		h.entries = slices.Insert(h.entries, i, entry[T]{on: on})
	}
	f(&h.entries[i].v)
	return h
}

// First returns the earliest day and its value, ok is false on an empty history.
func (h *History[T]) First() (on Date, v T, ok bool) {
	if len(h.entries) == 0 {
		return on, v, false
	}
	e := h.entries[0]
	return e.on, e.v, true
}

// Latest returns the last day and its value, ok is false on an empty history.
func (h *History[T]) Latest() (on Date, v T, ok bool) {
	if len(h.entries) == 0 {
		return on, v, false
	}
	e := h.entries[len(h.entries)-1]
	return e.on, e.v, true
}

// Get returns the value set on exactly that day.
func (h *History[T]) Get(day Date) (v T, ok bool) {
	if i, found := h.search(day); found {
		return h.entries[i].v, true
	}
	return v, false
}

// AsOf returns the entry of day or, if there is none, of the closest day
// before it. ok is false when every day of the history is after day.
func (h *History[T]) AsOf(day Date) (on Date, v T, ok bool) {
	i, found := h.search(day)
	if !found {
		i-- // insertion point, the previous entry is the latest before day
	}
	if i < 0 {
		return on, v, false
	}
	e := h.entries[i]
	return e.on, e.v, true
}

// Days iterates over the days in chronological order.
func (h *History[T]) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for _, e := range h.entries {
			if !yield(e.on) {
				return
			}
		}
	}
}

// Values iterates over day/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for _, e := range h.entries {
			if !yield(e.on, e.v) {
				return
			}
		}
	}
}
