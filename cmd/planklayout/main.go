// PlankLayout: floor plank layout calculator
//
// A cross-platform desktop application that lays planks into a room with
// an optional stagger pattern and randomized lengths, and exports the plan
// as PDF, labels, spreadsheet, DXF or PNG.
//
// Build:
//   go build -o planklayout ./cmd/planklayout
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o planklayout.exe ./cmd/planklayout
//   GOOS=darwin  GOARCH=amd64 go build -o planklayout-darwin ./cmd/planklayout
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/PlankLayout/internal/app"
	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/piwi3910/PlankLayout/internal/project"
	"github.com/piwi3910/PlankLayout/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		slog.Warn("Failed to load settings, using defaults.", "path", configPath, "error", err)
		config = model.DefaultAppConfig()
	}

	logger := app.NewLogger(config.LogLevel, "text", os.Stderr)
	slog.SetDefault(logger)

	inventory, inventoryPath, err := project.LoadOrCreateInventory()
	if err != nil {
		logger.Warn("Failed to load plank presets.", "path", inventoryPath, "error", err)
	}

	application := fyneapp.NewWithID("com.piwi3910.planklayout")
	application.Settings().SetTheme(ui.NewPlankLayoutThemeForName(config.Theme))

	window := application.NewWindow("PlankLayout: Floor Plank Layout Calculator")

	appUI := ui.NewApp(application, window, ui.Options{
		Config:        config,
		ConfigPath:    configPath,
		Inventory:     inventory,
		InventoryPath: inventoryPath,
		Logger:        logger,
	})
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	appUI.Start()

	window.Resize(fyne.NewSize(1280, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
