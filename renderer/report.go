package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/yieldcurve"
	md "github.com/nao1215/markdown"
)

// AppTitle heads every report.
const AppTitle = "U.S. Treasury Yield Curve Analyzer"

// Report is everything shown for one requested date.
type Report struct {
	Result    yieldcurve.Result
	LoadError error // download failure, if any; the result is then NoData
}

// ReportMarkdown renders a report: status notices, the curve points when
// there is a curve, and a footer about the data.
func ReportMarkdown(rep Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(AppTitle)
	if rep.LoadError != nil {
		for _, s := range LoadErrors(rep.LoadError) {
			s.alert(doc)
		}
	}
	StatusOf(rep.Result).alert(doc)

	if rep.Result.Outcome == yieldcurve.Curve {
		doc.H2(rep.Result.Title())
		doc.Table(PointsTable(rep.Result.Points))
	}

	doc.HorizontalRule()
	doc.PlainText(Footer())
	return doc.String()
}

// PointsTable lists the plotted points, shortest maturity first.
func PointsTable(p yieldcurve.PlotSet) md.TableSet {
	t := md.TableSet{Header: []string{"Maturity", "Years", "Yield (%)"}}
	for _, pt := range p {
		t.Rows = append(t.Rows, []string{pt.Label, fmt.Sprintf("%g", roundYears(pt.Years)), fmt.Sprintf("%.2f", pt.Yield)})
	}
	return t
}

// MaturitiesTable lists the maturities of the curve with their FRED series.
func MaturitiesTable() md.TableSet {
	t := md.TableSet{Header: []string{"Maturity", "Years", "FRED Series"}}
	for _, m := range yieldcurve.Maturities {
		t.Rows = append(t.Rows, []string{m.Label, fmt.Sprintf("%g", roundYears(m.Years)), m.SeriesID})
	}
	return t
}

// MaturitiesMarkdown renders the maturities table.
func MaturitiesMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Maturities")
	doc.Table(MaturitiesTable())
	return doc.String()
}

// Footer describes the source of the data.
func Footer() string {
	names := make([]string, 0, yieldcurve.NumMaturities)
	for _, m := range yieldcurve.Maturities {
		names = append(names, longName(m.Label))
	}
	return fmt.Sprintf("This application fetches U.S. Treasury yield data from the Federal Reserve Economic Data (FRED) "+
		"and displays the yield curve for a selected date.\n\n"+
		"**Maturities available:** %s.\n\nData provided by FRED.", strings.Join(names, ", "))
}

// longName turns "3 Mo" into "3-Month".
func longName(label string) string {
	n, unit, _ := strings.Cut(label, " ")
	switch unit {
	case "Mo":
		return n + "-Month"
	case "Yr":
		return n + "-Year"
	}
	return label
}

// roundYears keeps two decimals, 1/12 prints as 0.08.
func roundYears(y float64) float64 {
	return float64(int(y*100+0.5)) / 100
}
