package cmd

import (
	"context"
	"flag"

	"github.com/etnz/yieldcurve/renderer"
	"github.com/google/subcommands"
)

// maturitiesCmd implements the "maturities" command.
type maturitiesCmd struct{}

func (*maturitiesCmd) Name() string     { return "maturities" }
func (*maturitiesCmd) Synopsis() string { return "lists the maturities of the curve and their FRED series" }
func (*maturitiesCmd) Usage() string {
	return `ycurve maturities:

Lists the maturities plotted on the curve, with the FRED series they come from.
`
}

func (c *maturitiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *maturitiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.MaturitiesMarkdown())
	return subcommands.ExitSuccess
}
