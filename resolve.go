package yieldcurve

import (
	"fmt"

	"github.com/etnz/yieldcurve/date"
)

// Outcome is the kind of a Result.
type Outcome int

const (
	// NoData means the series is empty, typically because the provider failed.
	NoData Outcome = iota
	// NoDateOnOrBefore means every date in the series is after the requested one.
	NoDateOnOrBefore
	// EmptyCurve means a date was found but none of its maturities has a value.
	EmptyCurve
	// Curve means a curve with at least one point was found.
	Curve
)

func (o Outcome) String() string {
	switch o {
	case NoData:
		return "no data"
	case NoDateOnOrBefore:
		return "no date on or before"
	case EmptyCurve:
		return "empty curve"
	case Curve:
		return "curve"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of resolving a requested date against a series.
//
// Requested is always set. Date and Exact are set for EmptyCurve and Curve,
// Points only for Curve.
type Result struct {
	Outcome   Outcome
	Requested date.Date // the date asked for
	Date      date.Date // the trading day actually used
	Exact     bool      // Date == Requested
	Points    PlotSet
}

// Resolved reports whether a trading day was found.
func (r Result) Resolved() bool { return r.Outcome == EmptyCurve || r.Outcome == Curve }

// Title returns the chart title for a resolved result, or an empty string.
func (r Result) Title() string {
	if !r.Resolved() {
		return ""
	}
	return "U.S. Treasury Yield Curve: " + r.Date.String()
}

// Resolve finds the curve to display for the requested date.
//
// The requested date is used when the series has it, otherwise the latest
// date before it. Later dates are never considered. Resolve never fails: all
// situations are reported through the Result's Outcome. The series is only
// read.
func Resolve(s *Series, requested date.Date) Result {
	res := Result{Outcome: NoData, Requested: requested}
	if s.IsEmpty() {
		return res
	}

	on, rec, ok := s.AsOf(requested)
	if !ok {
		res.Outcome = NoDateOnOrBefore
		return res
	}
	res.Date = on
	res.Exact = on == requested

	points := NewPlotSet(rec)
	if len(points) == 0 {
		res.Outcome = EmptyCurve
		return res
	}
	res.Outcome = Curve
	res.Points = points
	return res
}
