package yieldcurve

import "math"

// CurvePoint is one plotted point of a yield curve.
type CurvePoint struct {
	Label string  // maturity label, e.g. "10 Yr"
	Years float64 // maturity in years
	Yield float64 // yield in percent
}

// PlotSet is a yield curve ready to plot: points are ordered by increasing
// maturity, no maturity appears twice and missing yields are left out.
type PlotSet []CurvePoint

// NewPlotSet extracts the populated maturities of a record.
func NewPlotSet(r Record) PlotSet {
	var p PlotSet
	for i, y := range r {
		if !y.Valid {
			continue
		}
		m := Maturities[i]
		p = append(p, CurvePoint{Label: m.Label, Years: m.Years, Yield: y.Value})
	}
	return p
}

// Years returns the x coordinates.
func (p PlotSet) Years() []float64 {
	xs := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.Years
	}
	return xs
}

// Yields returns the y coordinates.
func (p PlotSet) Yields() []float64 {
	ys := make([]float64, len(p))
	for i, pt := range p {
		ys[i] = pt.Yield
	}
	return ys
}

// MinMax returns the lowest and highest yields, or NaNs on an empty set.
func (p PlotSet) MinMax() (lo, hi float64) {
	if len(p) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi = p[0].Yield, p[0].Yield
	for _, pt := range p[1:] {
		lo = min(lo, pt.Yield)
		hi = max(hi, pt.Yield)
	}
	return lo, hi
}
