package yieldcurve

import "github.com/etnz/yieldcurve/date"

// full returns a record with every maturity populated, base+i for the i-th one.
func full(base float64) Record {
	var r Record
	for i := range r {
		r[i] = Pct(base + float64(i))
	}
	return r
}

// only returns a record where only the given labels are populated.
func only(values map[string]float64) Record {
	var r Record
	for label, v := range values {
		i, ok := MaturityByLabel(label)
		if !ok {
			panic("unknown maturity " + label)
		}
		r[i] = Pct(v)
	}
	return r
}

// D is a helper for test to parse a date from a const.
func D(s string) date.Date { return date.MustParse(s) }
