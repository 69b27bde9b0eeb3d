// Package plot draws a resolved yield curve as a PNG or SVG image.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/yieldcurve"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	XAxisName = "Maturity (Years)"
	YAxisName = "Yield (%)"

	width  = 1024
	height = 576
)

var curveColor = drawing.ColorBlue

// Format is an image format.
type Format int

const (
	PNG Format = iota
	SVG
)

// FormatOf returns the image format matching a file name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	default:
		return PNG, fmt.Errorf("unsupported image format %q, want .png or .svg", filepath.Ext(name))
	}
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Placeholder returns the text displayed instead of a curve, or an empty
// string for a curve.
func Placeholder(o yieldcurve.Outcome) string {
	switch o {
	case yieldcurve.NoData:
		return "No data available"
	case yieldcurve.NoDateOnOrBefore:
		return "No data available for this date range"
	case yieldcurve.EmptyCurve:
		return "No complete data for this date"
	default:
		return ""
	}
}

// YRange returns the yield axis bounds: 10% of margin around the plotted
// yields. It never returns an empty range, even for flat or zero yields.
func YRange(p yieldcurve.PlotSet) (lo, hi float64) {
	lo, hi = p.MinMax()
	if math.IsNaN(lo) {
		return 0, 1
	}
	lo -= 0.1 * math.Abs(lo)
	hi += 0.1 * math.Abs(hi)
	if hi-lo < 0.1 {
		lo, hi = lo-0.5, hi+0.5
	}
	return lo, hi
}

func percent(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return ""
}

func years(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%g", math.Round(f*100)/100)
	}
	return ""
}

// New builds the chart of a result: the curve itself, or an annotated
// placeholder when there is nothing to plot.
func New(r yieldcurve.Result) *chart.Chart {
	xRange := &chart.ContinuousRange{Min: 0, Max: yieldcurve.Maturities[yieldcurve.NumMaturities-1].Years}

	if r.Outcome != yieldcurve.Curve {
		hidden := chart.Style{Hidden: true}
		return &chart.Chart{
			Title:  r.Title(),
			Width:  width,
			Height: height,
			XAxis:  chart.XAxis{Style: hidden, Range: xRange},
			YAxis:  chart.YAxis{Style: hidden, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
			Series: []chart.Series{
				chart.AnnotationSeries{
					Annotations: []chart.Value2{{
						XValue: xRange.Max / 2,
						YValue: 0.5,
						Label:  Placeholder(r.Outcome),
					}},
				},
			},
		}
	}

	lo, hi := YRange(r.Points)
	return &chart.Chart{
		Title:  r.Title(),
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           XAxisName,
			Range:          xRange,
			ValueFormatter: years,
		},
		YAxis: chart.YAxis{
			Name:           YAxisName,
			Range:          &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: percent,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Yield Curve",
				Style: chart.Style{
					StrokeColor: curveColor,
					StrokeWidth: 3,
					DotColor:    curveColor,
					DotWidth:    4,
				},
				XValues: r.Points.Years(),
				YValues: r.Points.Yields(),
			},
		},
	}
}

// Render draws the chart of r into w.
func Render(w io.Writer, r yieldcurve.Result, f Format) error {
	if err := New(r).Render(f.provider(), w); err != nil {
		return fmt.Errorf("cannot render yield curve: %w", err)
	}
	return nil
}

// WriteFile renders the chart of r into a file, in the format given by its extension.
func WriteFile(name string, r yieldcurve.Result) error {
	format, err := FormatOf(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", name, err)
	}
	if err := Render(f, r, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
