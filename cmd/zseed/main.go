package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zseed/internal/cli"
)

func main() {
	app := zapp.New(zapp.WithName("zseed"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if _, err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_ = app.Close()
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("zseed", "err", err)
		os.Exit(2)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}
