package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

var (
	periodNames = [...]string{Daily: "daily", Weekly: "weekly", Monthly: "monthly", Yearly: "yearly"}
	periodNouns = [...]string{Daily: "day", Weekly: "week", Monthly: "month", Yearly: "year"}
)

// weekStart is the first day of a Weekly period.
const weekStart = time.Monday

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod reads a period name, as an adjective ("weekly") or a noun ("week").
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p := range periodNames {
		if s == periodNames[p] || s == periodNouns[p] {
			return Period(p), nil
		}
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", s, strings.Join(periodNames[:], ", "))
}

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Weekly:
		return d.Add(-((int(d.Weekday()) - int(weekStart) + 7) % 7))
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Yearly:
		return New(d.y, time.December, 31)
	default:
		return d
	}
}
