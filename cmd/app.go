// Package cmd implements the CLI application to browse the U.S. Treasury yield curve.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
	"github.com/etnz/yieldcurve/fred"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// APIKeyEnv is the environment variable holding the default FRED API key.
const APIKeyEnv = "FRED_API_KEY"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&curveCmd{}, "yield curve")
	c.Register(&rangeCmd{}, "yield curve")
	c.Register(&maturitiesCmd{}, "yield curve")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiKey = flag.String("api-key", "", "FRED API key, defaults to $"+APIKeyEnv+". Without a key, data is downloaded from the public graph CSV endpoint.")
var cacheDir = flag.String("cache-dir", "", "Directory to cache FRED responses in. Caching is disabled when empty.")
var cachePeriod = flag.String("cache-period", "daily", "How long cached responses stay fresh: daily, weekly, monthly or yearly.")
var years = flag.Int("years", yieldcurve.DefaultYears, "Number of years of history to load, ending yesterday.")
var verbose = flag.Bool("v", false, "Log debug information.")

// Setup applies the global flags to the logger. It must be called after the flags are parsed.
func Setup() {
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// APIKey returns the FRED API key from the command line or the environment.
func APIKey() string {
	if *apiKey != "" {
		return *apiKey
	}
	return os.Getenv(APIKeyEnv)
}

// NewProvider returns the FRED provider configured by the global flags.
func NewProvider() (yieldcurve.Provider, error) {
	var opts []fred.Option
	if key := APIKey(); key != "" {
		opts = append(opts, fred.WithAPIKey(key))
	}
	if *cacheDir != "" {
		p, err := date.ParsePeriod(*cachePeriod)
		if err != nil {
			return nil, fmt.Errorf("invalid -cache-period: %w", err)
		}
		opts = append(opts, fred.WithDiskCache(*cacheDir, p))
	}
	return yieldcurve.NewMemo(fred.NewProvider(opts...)), nil
}

// session is the data a command works on.
type session struct {
	today   date.Date
	window  date.Range
	series  *yieldcurve.Series
	loadErr error // download failure, the series is empty then
}

// bounds returns the dates a user may ask for.
func (s *session) bounds() date.Range { return yieldcurve.PickerBounds(s.series, s.today) }

// loadSession downloads the default window. Download failures are not
// returned, they are kept in the session for display.
func loadSession(ctx context.Context, p yieldcurve.Provider, today date.Date) *session {
	w := yieldcurve.DefaultRange(today, *years)
	s, err := yieldcurve.Load(ctx, p, w)
	if err != nil {
		log.Warnf("continuing without data: %v", err)
	}
	return &session{today: today, window: w, series: s, loadErr: err}
}

// openSession builds the provider from the global flags and loads the session.
func openSession(ctx context.Context) (*session, error) {
	p, err := NewProvider()
	if err != nil {
		return nil, err
	}
	return loadSession(ctx, p, date.Today()), nil
}

// printMarkdown prints markdown to stdout, rendered for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
