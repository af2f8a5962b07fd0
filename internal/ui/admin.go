package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/piwi3910/PlankLayout/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v >= 0 {
				*val = v
			}
		}
		return e
	}

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil && v > 0 {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	logSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	logSelect.SetSelected(cfg.LogLevel)

	staggerCheck := widget.NewCheck("", func(b bool) { cfg.DefaultStaggered = b })
	staggerCheck.SetChecked(cfg.DefaultStaggered)
	randomizeCheck := widget.NewCheck("", func(b bool) { cfg.DefaultRandomizeLengths = b })
	randomizeCheck.SetChecked(cfg.DefaultRandomizeLengths)

	// Box size 0 disables box counts in the estimate
	boxEntry := widget.NewEntry()
	boxEntry.SetText(strconv.Itoa(cfg.PiecesPerBox))
	boxEntry.OnChanged = func(text string) {
		if v, err := strconv.Atoi(text); err == nil && v >= 0 {
			cfg.PiecesPerBox = v
		}
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Log Level", logSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Room Width", intEntry(&cfg.DefaultRoom.Width)),
		widget.NewFormItem("Default Room Height", intEntry(&cfg.DefaultRoom.Height)),
		widget.NewFormItem("Default Plank Width", intEntry(&cfg.DefaultPlank.Width)),
		widget.NewFormItem("Default Plank Height", intEntry(&cfg.DefaultPlank.Height)),
		widget.NewFormItem("Stagger by Default", staggerCheck),
		widget.NewFormItem("Randomize by Default", randomizeCheck),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Planks per Box", boxEntry),
		widget.NewFormItem("Waste (%)", floatEntry(&cfg.WastePercent)),
		widget.NewFormItem("Price per Box", floatEntry(&cfg.PricePerBox)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 550))
	d.Show()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.inventory); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("planklayout-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and plank presets.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.applyBackup(backup)
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, plank presets) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

func (a *App) applyBackup(backup project.BackupData) {
	a.config = backup.Config
	a.inventory = backup.Inventory
	a.preset = nil
	a.applyTheme()
	if err := a.saveConfig(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
	}
	a.saveInventory()
	a.SetupMenus()
}

func (a *App) applyTheme() {
	a.fyneApp.Settings().SetTheme(NewPlankLayoutThemeForName(a.config.Theme))
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	if a.configPath == "" {
		return nil
	}
	return project.SaveAppConfig(a.configPath, a.config)
}

// settingsLayout is the layout a fresh window starts with.
func settingsLayout(cfg model.AppConfig) model.LayoutConfig {
	l := cfg.Layout()
	if err := l.Validate(); err != nil {
		return model.DefaultLayoutConfig()
	}
	return l
}
