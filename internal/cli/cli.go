// Package cli implements zseed's command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/zarlcorp/zseed/internal/api"
	"github.com/zarlcorp/zseed/internal/seed"
)

const (
	defaultCount      = 10
	defaultStartIndex = 1
)

// Options are the parsed command line flags.
type Options struct {
	BaseURL    string
	Count      int
	StartIndex int
}

// Parse reads flags from args. Usage and flag errors are written to w.
func Parse(args []string, w io.Writer) (Options, error) {
	fs := flag.NewFlagSet("zseed", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintln(w, "usage: zseed [--base-url URL] [--count N] [--start-index N]")
		fmt.Fprintln(w, "\nseed users and portfolios through the API.")
		fmt.Fprintln(w)
		fs.PrintDefaults()
	}

	var o Options
	fs.StringVar(&o.BaseURL, "base-url", api.DefaultBaseURL, "API base URL")
	fs.IntVar(&o.Count, "count", defaultCount, "number of users to create")
	fs.IntVar(&o.StartIndex, "start-index", defaultStartIndex, "first index used in user emails (avoids collisions with earlier runs)")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if o.Count < 0 {
		return Options{}, fmt.Errorf("--count must not be negative, got %d", o.Count)
	}

	o.BaseURL = api.NormalizeBaseURL(o.BaseURL)
	if o.BaseURL == "" {
		return Options{}, errors.New("--base-url must not be empty")
	}

	return o, nil
}

// Run parses args and seeds the API, writing progress to stdout. Per-user
// failures are reported in the output and summary, never as an error.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (seed.Summary, error) {
	opts, err := Parse(args, stderr)
	if err != nil {
		return seed.Summary{}, err
	}

	slog.Debug("seeding", "base_url", opts.BaseURL, "count", opts.Count, "start_index", opts.StartIndex)

	s := seed.Run(ctx, opts.BaseURL, opts.Count, opts.StartIndex,
		seed.WithReporter(seed.NewConsole(stdout)),
		seed.WithLogger(slog.Default()),
	)
	return s, nil
}
