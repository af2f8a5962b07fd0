package ui

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/engine"
	"github.com/piwi3910/PlankLayout/internal/importer"
	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/piwi3910/PlankLayout/internal/project"
	"github.com/piwi3910/PlankLayout/internal/ui/widgets"
)

const (
	maxRecentLayouts = 8
	zoomButtonSteps  = 4 // Zoom steps per toolbar button press
)

const controlsHelp = "Controls:\n" +
	"- WSAD or Arrow keys to move\n" +
	"- Mouse Wheel to Zoom in-out\n" +
	"- R to reset Zoom and Position\n" +
	"- UIOP to fine-tune room size\n" +
	"- HJKL to fine-tune plank size"

// Options carries the state loaded before the window opens.
type Options struct {
	Config        model.AppConfig
	ConfigPath    string
	Inventory     model.Inventory
	InventoryPath string
	Logger        *slog.Logger
}

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  *slog.Logger

	config        model.AppConfig
	configPath    string
	inventory     model.Inventory
	inventoryPath string

	engine  *engine.Engine
	seed    *int64             // fixed seed of the opened layout file
	current model.LayoutConfig // last successfully calculated configuration
	result  model.Result
	history *History
	preset  *model.PlankPreset // last applied plank preset

	// UI references for dynamic updates
	roomWidth, roomHeight   *sizeSlider
	plankWidth, plankHeight *sizeSlider
	staggerCheck            *widget.Check
	randomizeCheck          *widget.Check
	planksLabel             *widget.Label
	leftOverLabel           *widget.Label
	uncutLabel              *widget.Label
	zoomLabel               *widget.Label
	floor                   *widgets.FloorCanvas
	scroll                  *container.Scroll
}

// NewApp creates the application state. Call SetupMenus and Build before
// showing the window, then Start.
func NewApp(fyneApp fyne.App, window fyne.Window, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		fyneApp:       fyneApp,
		window:        window,
		logger:        logger,
		config:        opts.Config,
		configPath:    opts.ConfigPath,
		inventory:     opts.Inventory,
		inventoryPath: opts.InventoryPath,
		history:       NewHistory(),
		current:       settingsLayout(opts.Config),
	}
	a.engine = a.newEngine()
	return a
}

func (a *App) newEngine() *engine.Engine {
	opts := []engine.Option{engine.WithLogger(a.logger)}
	if a.seed != nil {
		opts = append(opts, engine.WithSeed(*a.seed))
	}
	return engine.New(opts...)
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	a.window.SetMainMenu(a.buildMainMenu())
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	// File Menu
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.buildRecentMenu()
	recent.Disabled = len(a.config.RecentLayouts) == 0

	fileMenu := fyne.NewMenu("File",
		withShortcut(fyne.NewMenuItem("Open Layout...", a.openLayout), fyne.KeyO),
		recent,
		withShortcut(fyne.NewMenuItem("Save Layout...", a.saveLayout), fyne.KeyS),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Room List...", a.importRooms),
		fyne.NewMenuItemSeparator(),
	)
	for _, f := range exportFormats {
		f := f
		fileMenu.Items = append(fileMenu.Items, fyne.NewMenuItem("Export "+f.name+"...", func() {
			a.exportResult(f)
		}))
	}
	fileMenu.Items = append(fileMenu.Items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	undoLabel := "Undo"
	if l := a.history.UndoLabel(); l != "" {
		undoLabel = "Undo " + l
	}
	undo := withShortcut(fyne.NewMenuItem(undoLabel, a.undo), fyne.KeyZ)
	undo.Disabled = !a.history.CanUndo()
	redo := withShortcut(fyne.NewMenuItem("Redo", a.redo), fyne.KeyY)
	redo.Disabled = !a.history.CanRedo()
	editMenu := fyne.NewMenu("Edit", undo, redo)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		withShortcut(fyne.NewMenuItem("Recalculate", a.recalculate), fyne.KeyReturn),
		fyne.NewMenuItem("Compare Scenarios...", a.showCompareDialog),
		fyne.NewMenuItem("Purchase Estimate...", a.showEstimateDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Plank Presets...", a.showPresetDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Controls", func() {
			dialog.ShowInformation("Controls", controlsHelp, a.window)
		}),
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu)
}

func withShortcut(item *fyne.MenuItem, key fyne.KeyName) *fyne.MenuItem {
	item.Shortcut = &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
	return item
}

func (a *App) buildRecentMenu() *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentLayouts))
	for _, path := range a.config.RecentLayouts {
		path := path
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.loadLayoutFile(path)
		}))
	}
	return fyne.NewMenu("Open Recent", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About PlankLayout",
		"PlankLayout: Floor Plank Layout Calculator\n\n"+
			"Lays planks into a rectangular room with an optional\n"+
			"stagger pattern and randomized lengths, reusing offcuts\n"+
			"before opening a fresh plank.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.floor = widgets.NewFloorCanvas(model.Result{})
	a.floor.OnZoom = func(steps float32) {
		a.setZoom(zoomBy(a.floor.Zoom(), steps))
	}
	a.scroll = container.NewScroll(a.floor)

	a.zoomLabel = widget.NewLabel("")
	a.setZoom(ZoomDefault)
	zoomBar := container.NewHBox(
		newIconButtonWithTooltip(theme.ZoomOutIcon(), "Zoom out", func() {
			a.setZoom(zoomBy(a.floor.Zoom(), -zoomButtonSteps))
		}),
		a.zoomLabel,
		newIconButtonWithTooltip(theme.ZoomInIcon(), "Zoom in", func() {
			a.setZoom(zoomBy(a.floor.Zoom(), zoomButtonSteps))
		}),
		newIconButtonWithTooltip(theme.ZoomFitIcon(), "Reset zoom and position (R)", a.resetView),
		layout.NewSpacer(),
		newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo),
		newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo),
	)

	return container.NewBorder(nil, nil, a.buildSidePanel(), nil,
		container.NewBorder(zoomBar, nil, nil, nil, a.scroll))
}

// ─── Side Panel ────────────────────────────────────────────

func (a *App) buildSidePanel() fyne.CanvasObject {
	cfg := a.current
	a.roomWidth = newSizeSlider(a.config.RoomRange, cfg.Room.Width)
	a.roomHeight = newSizeSlider(a.config.RoomRange, cfg.Room.Height)
	a.plankWidth = newSizeSlider(a.config.PlankWidthRange, cfg.Plank.Width)
	a.plankHeight = newSizeSlider(a.config.PlankHeightRange, cfg.Plank.Height)

	a.staggerCheck = widget.NewCheck("Stagger Pattern", nil)
	a.staggerCheck.SetChecked(cfg.Staggered)
	a.randomizeCheck = widget.NewCheck("Randomize Lengths", nil)
	a.randomizeCheck.SetChecked(cfg.RandomizeLengths)

	a.planksLabel = widget.NewLabel("")
	a.leftOverLabel = widget.NewLabel("")
	a.uncutLabel = widget.NewLabel("")
	a.refreshStats()

	sliders := container.New(layout.NewFormLayout(),
		widget.NewLabel("Room X"), a.roomWidth.object(),
		widget.NewLabel("Room Y"), a.roomHeight.object(),
		widget.NewLabel("Plank X"), a.plankWidth.object(),
		widget.NewLabel("Plank Y"), a.plankHeight.object(),
	)

	recalc := newButtonWithTooltip("RECALCULATE", "Lay out the room with the current settings", a.recalculate)
	recalc.Importance = widget.HighImportance

	stats := container.NewVBox(a.planksLabel, a.leftOverLabel, a.uncutLabel)

	panel := container.NewVBox(
		widget.NewCard("", "", widget.NewLabel(controlsHelp)),
		widget.NewCard("Layout", "", sliders),
		widget.NewCard("Results", "", stats),
		a.staggerCheck,
		a.randomizeCheck,
		recalc,
	)
	return container.NewVScroll(container.NewPadded(panel))
}

// sizeSlider is an integer slider with its current value shown beside it.
type sizeSlider struct {
	slider *widget.Slider
	value  *widget.Label
}

func newSizeSlider(rng model.Range, v int) *sizeSlider {
	s := &sizeSlider{
		slider: widget.NewSlider(float64(rng.Min), float64(rng.Max)),
		value:  widget.NewLabel(""),
	}
	s.slider.Step = 1
	s.slider.OnChanged = func(f float64) {
		s.value.SetText(strconv.Itoa(int(math.Floor(f))))
	}
	s.set(v)
	return s
}

func (s *sizeSlider) object() fyne.CanvasObject {
	return container.NewBorder(nil, nil, nil, s.value, s.slider)
}

// get returns the slider value rounded down, as the slider is dragged in
// fractional steps on some drivers.
func (s *sizeSlider) get() int {
	return int(math.Floor(s.slider.Value))
}

// set moves the slider to v, widening its range when v lies outside it.
func (s *sizeSlider) set(v int) {
	if f := float64(v); f > s.slider.Max {
		s.slider.Max = f
	} else if f < s.slider.Min {
		s.slider.Min = f
	}
	s.slider.SetValue(float64(v))
	s.value.SetText(strconv.Itoa(v))
}

func (s *sizeSlider) rng() model.Range {
	return model.Range{Min: int(s.slider.Min), Max: int(s.slider.Max)}
}

// formConfig reads the layout configuration from the side panel.
func (a *App) formConfig() model.LayoutConfig {
	return model.LayoutConfig{
		Room:             model.Dimensions{Width: a.roomWidth.get(), Height: a.roomHeight.get()},
		Plank:            model.Dimensions{Width: a.plankWidth.get(), Height: a.plankHeight.get()},
		Staggered:        a.staggerCheck.Checked,
		RandomizeLengths: a.randomizeCheck.Checked,
	}
}

// setForm shows cfg in the side panel without recalculating.
func (a *App) setForm(cfg model.LayoutConfig) {
	a.roomWidth.set(cfg.Room.Width)
	a.roomHeight.set(cfg.Room.Height)
	a.plankWidth.set(cfg.Plank.Width)
	a.plankHeight.set(cfg.Plank.Height)
	a.staggerCheck.SetChecked(cfg.Staggered)
	a.randomizeCheck.SetChecked(cfg.RandomizeLengths)
}

// sliderRanges returns the configured ranges widened to the sliders' current limits.
func (a *App) sliderRanges() model.AppConfig {
	ranges := a.config
	w, h := a.roomWidth.rng(), a.roomHeight.rng()
	ranges.RoomRange = model.Range{Min: min(w.Min, h.Min), Max: max(w.Max, h.Max)}
	ranges.PlankWidthRange = a.plankWidth.rng()
	ranges.PlankHeightRange = a.plankHeight.rng()
	return ranges
}

func (a *App) refreshStats() {
	a.planksLabel.SetText(fmt.Sprintf("Planks needed: %d", a.result.TotalPlanksUsed))
	a.leftOverLabel.SetText(fmt.Sprintf("Left over pieces: %d", a.result.LeftOverCount))
	a.uncutLabel.SetText(fmt.Sprintf("Uncut planks: %d", a.result.UncutPlankCount))
}

// ─── Calculation ───────────────────────────────────────────

// Start installs the keyboard handler and lays out the initial room.
func (a *App) Start() {
	a.window.Canvas().SetOnTypedKey(a.onTypedKey)
	a.calculate(a.current)
}

func (a *App) recalculate() {
	a.apply(a.formConfig(), "Recalculate")
}

// apply calculates cfg and records the replaced configuration for undo.
// On failure the previous layout stays on screen.
func (a *App) apply(cfg model.LayoutConfig, label string) bool {
	prev, hadResult := a.current, !a.result.Empty()
	if !a.calculate(cfg) {
		return false
	}
	if hadResult && prev != cfg {
		a.history.Push(MakeSnapshot(prev, label))
	}
	a.SetupMenus()
	return true
}

func (a *App) calculate(cfg model.LayoutConfig) bool {
	a.engine.Configure(cfg)
	result, err := a.engine.Calculate()
	if err != nil {
		a.logger.Warn("Layout calculation failed.",
			"room", cfg.Room.String(), "plank", cfg.Plank.String(),
			"staggered", cfg.Staggered, "error", err)
		dialog.ShowError(err, a.window)
		return false
	}
	a.logger.Debug("Layout calculated.",
		"room", cfg.Room.String(), "plank", cfg.Plank.String(),
		"planks", result.TotalPlanksUsed, "left_over", result.LeftOverCount)

	a.current = cfg
	a.result = result
	a.refreshStats()
	a.floor.SetResult(result)
	a.scroll.Refresh()
	return true
}

func (a *App) undo() {
	s, ok := a.history.Undo(MakeSnapshot(a.current, "Undo"))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) redo() {
	s, ok := a.history.Redo(MakeSnapshot(a.current, "Redo"))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) restore(s Snapshot) {
	a.setForm(s.Config)
	a.calculate(s.Config)
	a.SetupMenus()
}

// ─── View ──────────────────────────────────────────────────

func (a *App) setZoom(z float32) {
	a.floor.SetZoom(clampZoom(z))
	a.zoomLabel.SetText(fmt.Sprintf("%.0f%%", a.floor.Zoom()*100))
	if a.scroll != nil {
		a.scroll.Refresh()
	}
}

func (a *App) resetView() {
	a.setZoom(ZoomDefault)
	a.scroll.Offset = fyne.NewPos(0, 0)
	a.scroll.Refresh()
}

func (a *App) pan(dx, dy float32) {
	content := widgets.ContentSize(a.result, a.floor.Zoom())
	view := a.scroll.Size()
	a.scroll.Offset = fyne.NewPos(
		clampOffset(a.scroll.Offset.X+dx, content.Width, view.Width),
		clampOffset(a.scroll.Offset.Y+dy, content.Height, view.Height),
	)
	a.scroll.Refresh()
}

func (a *App) onTypedKey(ev *fyne.KeyEvent) {
	if dx, dy, ok := panForKey(ev.Name); ok {
		a.pan(dx, dy)
		return
	}
	if ev.Name == fyne.KeyR {
		a.resetView()
		return
	}
	cfg := a.formConfig()
	if adjustForKey(ev.Name, &cfg, a.sliderRanges()) {
		a.setForm(cfg)
	}
}

// ─── Layout Files ──────────────────────────────────────────

func (a *App) openLayout() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.loadLayoutFile(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) loadLayoutFile(path string) {
	layouts, err := project.LoadLayoutFile(path, a.config)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if len(layouts) == 0 {
		dialog.ShowInformation("No Layouts", fmt.Sprintf("%s defines no layouts.", filepath.Base(path)), a.window)
		return
	}
	a.rememberLayout(path)

	if len(layouts) == 1 {
		a.applyLayout(layouts[0])
		return
	}
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	a.pickOne("Open Layout", "Layout", names, func(i int) {
		a.applyLayout(layouts[i])
	})
}

func (a *App) applyLayout(l project.Layout) {
	a.seed = l.Seed
	a.engine = a.newEngine()
	a.setForm(l.Config)
	a.apply(l.Config, "Open "+l.Name)
	a.window.SetTitle("PlankLayout: " + l.Name)
}

func (a *App) saveLayout() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		l := project.Layout{Name: name, Config: a.current, Seed: a.seed}
		if err := project.SaveLayoutFile(path, []project.Layout{l}); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberLayout(path)
	}, a.window)
	d.SetFileName("layout" + project.LayoutFileExt)
	d.Show()
}

func (a *App) rememberLayout(path string) {
	a.config.AddRecentLayout(path, maxRecentLayouts)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("Failed to save recent layouts.", "path", a.configPath, "error", err)
	}
	a.SetupMenus()
}

// ─── Room Lists ────────────────────────────────────────────

func (a *App) importRooms() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(importer.ImportFile(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	for _, w := range result.Warnings {
		a.logger.Warn("Room import warning.", "warning", w)
	}
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	if len(result.Rooms) == 0 {
		return
	}

	names := make([]string, len(result.Rooms))
	for i, r := range result.Rooms {
		names[i] = fmt.Sprintf("%s (%s)", r.Label, r.Size)
	}
	a.pickOne("Imported Rooms", "Room", names, func(i int) {
		cfg := result.Rooms[i].Layout(a.current)
		a.setForm(cfg)
		a.apply(cfg, "Room "+result.Rooms[i].Label)
	})
}

// pickOne asks the user to choose one of names.
func (a *App) pickOne(title, label string, names []string, onPick func(i int)) {
	sel := widget.NewSelect(names, nil)
	sel.SetSelectedIndex(0)
	form := dialog.NewForm(title, "Open", "Cancel",
		[]*widget.FormItem{widget.NewFormItem(label, sel)},
		func(ok bool) {
			if !ok || sel.SelectedIndex() < 0 {
				return
			}
			onPick(sel.SelectedIndex())
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 200))
	form.Show()
}
