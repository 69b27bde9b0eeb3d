// Command ycurve displays the U.S. Treasury yield curve from FRED data.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/yieldcurve/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	log "github.com/sirupsen/logrus"
)

const dotenvFile = ".env"

// completion describes the command line for shell completion.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"curve": {
			Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"o": predict.Files("*"),
			},
		},
		"range":      {},
		"maturities": {},
		"help":       {},
		"flags":      {},
		"commands":   {},
		"topic": {
			Flags: map[string]complete.Predictor{"list": predict.Nothing},
			Args:  predict.Set{"curve", "data-source", "dates"},
		},
	},
	Flags: map[string]complete.Predictor{
		"api-key":      predict.Nothing,
		"cache-dir":    predict.Dirs("*"),
		"cache-period": predict.Set{"daily", "weekly", "monthly", "yearly"},
		"years":        predict.Nothing,
		"v":            predict.Nothing,
	},
}

func main() {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Error("error loading dotenv file")
			os.Exit(1)
		}
	}

	name := path.Base(os.Args[0])
	completion.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()

	if sub := flag.Arg(0); sub != "" && !isRegistered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
