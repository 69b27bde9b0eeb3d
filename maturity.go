package yieldcurve

import "strings"

// Maturity describes one constant maturity Treasury series.
type Maturity struct {
	Label    string  // user facing name, e.g. "10 Yr"
	Years    float64 // time to maturity in years, used as the x coordinate
	SeriesID string  // FRED series identifier
}

// NumMaturities is the number of maturities in a Record.
const NumMaturities = 11

// Maturities is the static configuration of the curve, in increasing years.
//
// It is never mutated: index i of a Record always holds the yield for Maturities[i].
var Maturities = [NumMaturities]Maturity{
	{"1 Mo", 1.0 / 12, "DGS1MO"},
	{"3 Mo", 3.0 / 12, "DGS3MO"},
	{"6 Mo", 6.0 / 12, "DGS6MO"},
	{"1 Yr", 1, "DGS1"},
	{"2 Yr", 2, "DGS2"},
	{"3 Yr", 3, "DGS3"},
	{"5 Yr", 5, "DGS5"},
	{"7 Yr", 7, "DGS7"},
	{"10 Yr", 10, "DGS10"},
	{"20 Yr", 20, "DGS20"},
	{"30 Yr", 30, "DGS30"},
}

// MaturityByLabel returns the index of the maturity labeled label.
func MaturityByLabel(label string) (int, bool) {
	for i, m := range Maturities {
		if m.Label == label {
			return i, true
		}
	}
	return -1, false
}

// MaturityBySeriesID returns the index of the maturity for a FRED series id.
// The lookup is case insensitive.
func MaturityBySeriesID(id string) (int, bool) {
	for i, m := range Maturities {
		if strings.EqualFold(m.SeriesID, strings.TrimSpace(id)) {
			return i, true
		}
	}
	return -1, false
}

// SeriesIDs returns the FRED series identifiers in Maturities order.
func SeriesIDs() []string {
	ids := make([]string, 0, NumMaturities)
	for _, m := range Maturities {
		ids = append(ids, m.SeriesID)
	}
	return ids
}
