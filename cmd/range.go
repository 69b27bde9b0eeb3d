package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// rangeCmd implements the "range" command.
type rangeCmd struct{}

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "prints the range of dates that can be displayed" }
func (*rangeCmd) Usage() string {
	return `ycurve range:

Prints the first and last dates accepted by the curve command, and the number
of trading days loaded.
`
}

func (c *rangeCmd) SetFlags(f *flag.FlagSet) {}

func (c *rangeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if s.loadErr != nil {
		fmt.Fprintf(os.Stderr, "Error fetching data from FRED: %v\n", s.loadErr)
	}
	b := s.bounds()
	fmt.Printf("from:   %s\n", b.From)
	fmt.Printf("to:     %s\n", b.To)
	fmt.Printf("days:   %d\n", s.series.Len())
	fmt.Printf("window: %s\n", s.window)
	if s.series.IsEmpty() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
