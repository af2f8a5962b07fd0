// plankcalc lays out floor planks from the command line.
//
// Build:
//   go build -o plankcalc ./cmd/plankcalc
//
// Examples:
//   plankcalc -room 560x400 -plank 130x25 -staggered
//   plankcalc -compare -room 480x320
//   plankcalc -pdf plan.pdf -xlsx plan.xlsx layouts/
//   plankcalc -rooms rooms.csv -plank 120x20 -png preview.png

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/piwi3910/PlankLayout/internal/app"
	"github.com/piwi3910/PlankLayout/internal/cli"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and runs the requested layouts.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	return app.NewApp(outW, logW, config).Run(ctx)
}
