package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
	"github.com/etnz/yieldcurve/plot"
	"github.com/etnz/yieldcurve/renderer"
	"github.com/google/subcommands"
)

// curveCmd implements the "curve" command.
type curveCmd struct {
	on     string
	output string
}

func (*curveCmd) Name() string     { return "curve" }
func (*curveCmd) Synopsis() string { return "shows the yield curve on a given date" }
func (*curveCmd) Usage() string {
	return `ycurve curve [-d <date>] [-o <file.png|file.svg>]:

Shows the U.S. Treasury yield curve on a date, or on the closest trading day
before it. The date must be within the loaded history, it defaults to the
latest available day.
`
}

func (c *curveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "", "date of the curve (YYYY-MM-DD), defaults to the latest available")
	f.StringVar(&c.output, "o", "", "write the chart to this file, the extension selects the format (.png or .svg)")
}

func (c *curveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output != "" {
		if _, err := plot.FormatOf(c.output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	on, err := selectDate(c.on, s.bounds())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	result := yieldcurve.Resolve(s.series, on)
	printMarkdown(renderer.ReportMarkdown(renderer.Report{Result: result, LoadError: s.loadErr}))

	if c.output != "" {
		if err := plot.WriteFile(c.output, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Chart written to %s\n", c.output)
	}

	if result.Outcome == yieldcurve.NoData {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// selectDate parses the date requested by the user, an empty input selects
// the last selectable day. Dates outside bounds are rejected.
func selectDate(input string, bounds date.Range) (date.Date, error) {
	if input == "" {
		return bounds.To, nil
	}
	on, err := date.Parse(input)
	if err != nil {
		return date.Date{}, err
	}
	if !bounds.Contains(on) {
		return date.Date{}, fmt.Errorf("date %s is outside of the available range %s", on, bounds)
	}
	return on, nil
}
