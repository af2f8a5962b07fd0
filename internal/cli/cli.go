package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/piwi3910/PlankLayout/internal/app"
	"github.com/piwi3910/PlankLayout/internal/model"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plankcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
plankcalc - Lay out floor planks with staggered rows and offcut reuse.

Usage:
  plankcalc [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a single .hcl layout file or a directory containing .hcl files.
    Without it the -room and -plank flags describe a single layout.

Options:
`)
		flagSet.PrintDefaults()
	}

	layoutFlag := flagSet.String("layout", "", "Path to the layout file or directory.")
	roomsFlag := flagSet.String("rooms", "", "CSV, XLSX or DXF room list; every room is laid out.")
	configFlag := flagSet.String("config", "", "Application config file. Defaults to ~/.planklayout/config.json.")
	roomFlag := flagSet.String("room", "", "Room size as WIDTHxHEIGHT, e.g. 560x400.")
	plankFlag := flagSet.String("plank", "", "Plank size as WIDTHxHEIGHT, e.g. 130x25.")
	staggeredFlag := flagSet.Bool("staggered", false, "Offset row starts with the stagger pattern.")
	randomizeFlag := flagSet.Bool("randomize", false, "Cut planks to random lengths.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for randomized lengths and colors. Random when unset.")
	compareFlag := flagSet.Bool("compare", false, "Compare straight, staggered and randomized variants.")
	pdfFlag := flagSet.String("pdf", "", "Write the layout report PDF to this path.")
	labelsFlag := flagSet.String("labels", "", "Write the piece label sheet PDF to this path.")
	xlsxFlag := flagSet.String("xlsx", "", "Write the cut list workbook to this path.")
	dxfFlag := flagSet.String("dxf", "", "Write the DXF drawing to this path.")
	pngFlag := flagSet.String("png", "", "Write a raster preview to this path.")
	pngScaleFlag := flagSet.Int("png-scale", 2, "Pixels per layout unit of the raster preview.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := *layoutFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))
	}
	slog.Debug("Layout path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg := app.Config{
		LayoutPath: path,
		RoomsPath:  *roomsFlag,
		ConfigPath: *configFlag,
		Compare:    *compareFlag,
		Exports: app.Exports{
			PDF:      *pdfFlag,
			Labels:   *labelsFlag,
			XLSX:     *xlsxFlag,
			DXF:      *dxfFlag,
			PNG:      *pngFlag,
			PNGScale: *pngScaleFlag,
		},
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}

	if *roomFlag != "" {
		d, err := model.ParseDimensions(*roomFlag)
		if err != nil {
			return nil, false, usageError("invalid -room: %v", err)
		}
		cfg.Room = &d
	}
	if *plankFlag != "" {
		d, err := model.ParseDimensions(*plankFlag)
		if err != nil {
			return nil, false, usageError("invalid -plank: %v", err)
		}
		cfg.Plank = &d
	}
	if set["staggered"] {
		cfg.Staggered = staggeredFlag
	}
	if set["randomize"] {
		cfg.Randomize = randomizeFlag
	}
	if set["seed"] {
		cfg.Seed = seedFlag
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
