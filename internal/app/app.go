package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PlankLayout/internal/engine"
	"github.com/piwi3910/PlankLayout/internal/export"
	"github.com/piwi3910/PlankLayout/internal/importer"
	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/piwi3910/PlankLayout/internal/project"
)

// App is a single command-line run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// job is one layout to compute.
type job struct {
	name string
	cfg  model.LayoutConfig
	seed *int64
}

// NewApp creates an App that prints reports to outW and logs to logW.
func NewApp(outW, logW io.Writer, config *Config) *App {
	return &App{
		outW:   outW,
		logger: NewLogger(config.LogLevel, config.LogFormat, logW),
		config: config,
	}
}

// Run computes every requested layout in order and stops at the first
// failure.
func (a *App) Run(ctx context.Context) error {
	configPath := a.config.ConfigPath
	if configPath == "" {
		configPath = project.DefaultConfigPath()
	}
	defaults, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	a.logger.Debug("Loaded application config.", "path", configPath)

	jobs, err := a.jobs(defaults)
	if err != nil {
		return err
	}
	a.logger.Debug("Resolved layouts.", "count", len(jobs))

	for i, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(a.outW)
		}
		if a.config.Compare {
			err = a.compare(j)
		} else {
			err = a.calculate(j, defaults, len(jobs) > 1)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// jobs resolves the layouts of the run from a layout file, a room list or
// the flags alone.
func (a *App) jobs(defaults model.AppConfig) ([]job, error) {
	base := a.config.base(defaults)

	switch {
	case a.config.LayoutPath != "":
		effective := defaults
		effective.DefaultRoom = base.Room
		effective.DefaultPlank = base.Plank
		effective.DefaultStaggered = base.Staggered
		effective.DefaultRandomizeLengths = base.RandomizeLengths

		layouts, err := project.LoadLayouts(a.config.LayoutPath, effective)
		if err != nil {
			return nil, err
		}
		jobs := make([]job, 0, len(layouts))
		for _, l := range layouts {
			seed := l.Seed
			if seed == nil {
				seed = a.config.Seed
			}
			jobs = append(jobs, job{name: l.Name, cfg: l.Config, seed: seed})
		}
		return jobs, nil

	case a.config.RoomsPath != "":
		imported := importer.ImportFile(a.config.RoomsPath)
		for _, w := range imported.Warnings {
			a.logger.Warn("Room list warning.", "path", a.config.RoomsPath, "message", w)
		}
		for _, e := range imported.Errors {
			a.logger.Warn("Skipped room.", "path", a.config.RoomsPath, "reason", e)
		}
		if len(imported.Rooms) == 0 {
			return nil, fmt.Errorf("no rooms imported from %s: %s", a.config.RoomsPath, strings.Join(imported.Errors, "; "))
		}
		jobs := make([]job, 0, len(imported.Rooms))
		for _, r := range imported.Rooms {
			jobs = append(jobs, job{name: r.Label, cfg: r.Layout(base), seed: a.config.Seed})
		}
		return jobs, nil

	default:
		return []job{{name: "default", cfg: base, seed: a.config.Seed}}, nil
	}
}

func (a *App) options(j job) []engine.Option {
	opts := []engine.Option{engine.WithLogger(a.logger)}
	if j.seed != nil {
		opts = append(opts, engine.WithSeed(*j.seed))
	}
	return opts
}

func (a *App) calculate(j job, defaults model.AppConfig, multiple bool) error {
	result, err := engine.Calculate(j.cfg, a.options(j)...)
	if err != nil {
		return fmt.Errorf("layout %q: %w", j.name, err)
	}
	a.logger.Info("Layout calculated.", "layout", j.name, "planks", result.TotalPlanksUsed, "left_over", result.LeftOverCount)

	estimate := model.CalculatePurchaseEstimate(result, defaults.PiecesPerBox, defaults.WastePercent, defaults.PricePerBox)
	if err := writeSummary(a.outW, j.name, result, estimate); err != nil {
		return err
	}
	return a.export(j.name, result, multiple)
}

func (a *App) compare(j job) error {
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(j.cfg), a.options(j)...)
	best := engine.Best(results)
	if best < 0 {
		return fmt.Errorf("layout %q: no scenario could be laid out: %w", j.name, results[0].Err)
	}
	return writeComparison(a.outW, j.name, results, best)
}

// export writes every requested file. With several layouts the layout name
// is added to each file name.
func (a *App) export(name string, result model.Result, multiple bool) error {
	e := a.config.Exports
	writers := []struct {
		format string
		path   string
		write  func(string) error
	}{
		{"pdf", e.PDF, func(p string) error { return export.ExportPDF(p, result) }},
		{"labels", e.Labels, func(p string) error { return export.ExportLabels(p, result) }},
		{"xlsx", e.XLSX, func(p string) error { return export.ExportXLSX(p, result) }},
		{"dxf", e.DXF, func(p string) error { return export.ExportDXF(p, result) }},
		{"png", e.PNG, func(p string) error { return export.ExportPNG(p, result, e.PNGScale) }},
	}

	var errs []error
	for _, w := range writers {
		if w.path == "" {
			continue
		}
		path := w.path
		if multiple {
			path = suffixPath(path, name)
		}
		if err := w.write(path); err != nil {
			errs = append(errs, fmt.Errorf("%s export of layout %q: %w", w.format, name, err))
			continue
		}
		a.logger.Info("Export written.", "format", w.format, "path", path)
	}
	return errors.Join(errs...)
}

// suffixPath inserts a file-name-safe form of name before the extension.
func suffixPath(path, name string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + slug(name) + ext
}

func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "layout"
	}
	return b.String()
}
