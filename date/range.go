package date

import "fmt"

// Range is a closed interval of days. It is comparable and can key a map.
type Range struct{ From, To Date }

// NewRange returns the calendar period containing d, e.g. its week.
func NewRange(d Date, p Period) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// LastDays returns the n days before to, and to itself.
func LastDays(to Date, n int) Range { return Range{From: to.Add(-n), To: to} }

// Contains reports whether d is within r, bounds included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// IsEmpty reports whether no day is within r.
func (r Range) IsEmpty() bool { return r.To.Before(r.From) }

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

// Period returns the calendar period r spans exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Yearly} {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// Identifier is a short and unique name for r, usable in file names:
// "2025-09-08", "2025-W37", "2025-09", "2025" for calendar periods, and
// "2025-09-02_2025-09-10" otherwise.
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		year, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return r.From.Format("2006-01")
	case Yearly:
		return fmt.Sprint(r.From.Year())
	default:
		return r.From.String()
	}
}
