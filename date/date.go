// Package date provides a calendar day type and the chronological containers
// built on it. Days carry no clock and no location.
package date

import (
	"cmp"
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the ISO-8601 layout dates are printed with.
const DateFormat = "2006-01-02"

// lenientFormat also reads single digit months and days, as in "2025-7-1".
const lenientFormat = "2006-1-2"

// Date is a calendar day. The zero value is not a valid day.
//
// Dates are comparable with ==.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the day at year, month, day. Out of range values are
// normalized like time.Date does, New(2024, 3, 0) is 2024-02-29.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Of returns the day t falls on, in its own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today is the current local day.
func Today() Date { return Of(time.Now()) }

// time is midnight UTC on d. Two equal dates give equal times.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int { return d.d }
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// Compare returns -1, 0 or +1 when d is before, on or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmp.Compare(d.y, x.y)
	case d.m != x.m:
		return cmp.Compare(int(d.m), int(x.m))
	default:
		return cmp.Compare(d.d, x.d)
	}
}

func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Equal is d == x. It lets go-cmp compare dates.
func (d Date) Equal(x Date) bool { return d == x }

// Add moves d by n days, backward when n is negative.
func (d Date) Add(n int) Date { return New(d.y, d.m, d.d+n) }

// Format formats d with a time.Format layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

func (d Date) String() string { return d.Format(DateFormat) }

// Parse reads a YYYY-MM-DD date, leading zeros being optional.
func Parse(str string) (Date, error) {
	t, err := time.Parse(lenientFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return Of(t), nil
}

// MustParse is Parse for constants, it panics on invalid input.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalJSON reads a date from a JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
