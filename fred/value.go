package fred

import (
	"fmt"
	"strings"

	"github.com/etnz/yieldcurve"
	"github.com/shopspring/decimal"
)

// parseValue parses an observation value. FRED marks a missing observation
// with "." (or, in recent CSV downloads, an empty cell).
func parseValue(s string) (yieldcurve.Yield, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return yieldcurve.Yield{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return yieldcurve.Yield{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return yieldcurve.Pct(d.InexactFloat64()), nil
}
