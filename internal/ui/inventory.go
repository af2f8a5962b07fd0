package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/piwi3910/PlankLayout/internal/project"
)

// presetFields holds the raw text of the preset form.
type presetFields struct {
	name, width, height, material, perBox, price string
}

// parsePreset validates the preset form and copies it into p, keeping p.ID.
func parsePreset(f presetFields, p *model.PlankPreset) error {
	name := strings.TrimSpace(f.name)
	if name == "" {
		return errors.New("name must not be empty")
	}
	w, errW := strconv.Atoi(strings.TrimSpace(f.width))
	h, errH := strconv.Atoi(strings.TrimSpace(f.height))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return errors.New("width and height must be whole numbers > 0")
	}
	perBox := 0
	if s := strings.TrimSpace(f.perBox); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return errors.New("planks per box must be a whole number >= 0")
		}
		perBox = v
	}
	price := 0.0
	if s := strings.TrimSpace(f.price); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return errors.New("price must be a number >= 0")
		}
		price = v
	}

	p.Name = name
	p.Width, p.Height = w, h
	p.Material = strings.TrimSpace(f.material)
	p.PiecesPerBox = perBox
	p.PricePerBox = price
	return nil
}

// ─── Plank Preset Dialog ───────────────────────────────────

func (a *App) showPresetDialog() {
	presetList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		presetList.RemoveAll()

		if len(a.inventory.Planks) == 0 {
			presetList.Add(widget.NewLabel("No plank presets defined."))
			return
		}

		header := container.NewGridWithColumns(8,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Material", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Per Box", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Price", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		presetList.Add(header)
		presetList.Add(widget.NewSeparator())

		for i := range a.inventory.Planks {
			p := a.inventory.Planks[i]
			row := container.NewGridWithColumns(8,
				widget.NewLabel(p.Name),
				widget.NewLabel(p.Dimensions().String()),
				widget.NewLabel(p.Material),
				widget.NewLabel(strconv.Itoa(p.PiecesPerBox)),
				widget.NewLabel(fmt.Sprintf("%.2f", p.PricePerBox)),
				newIconButtonWithTooltip(theme.ConfirmIcon(), "Use this plank", func() {
					a.applyPreset(p)
				}),
				newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit preset", func() {
					a.showPresetForm(a.inventory.FindPlankByID(p.ID), refreshList)
				}),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Delete preset", func() {
					a.inventory.RemovePlank(p.ID)
					a.saveInventory()
					refreshList()
				}),
			)
			presetList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Preset", theme.ContentAddIcon(), func() {
		a.showPresetForm(nil, refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importInventory(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportInventory()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(presetList),
	)

	d := dialog.NewCustom("Plank Presets", "Close", content, a.window)
	d.Resize(fyne.NewSize(800, 500))
	d.Show()
}

// showPresetForm edits existing, or adds a new preset when existing is nil.
func (a *App) showPresetForm(existing *model.PlankPreset, onDone func()) {
	title, confirm := "Add Plank Preset", "Add"
	p := model.NewPlankPreset(fmt.Sprintf("Plank %s", a.current.Plank), a.current.Plank.Width, a.current.Plank.Height, "", a.config.PiecesPerBox)
	if existing != nil {
		title, confirm = "Edit Plank Preset", "Save"
		p = *existing
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(p.Name)
	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(p.Width))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(strconv.Itoa(p.Height))
	materialEntry := widget.NewEntry()
	materialEntry.SetPlaceHolder("Oak, Laminate, ...")
	materialEntry.SetText(p.Material)
	perBoxEntry := widget.NewEntry()
	perBoxEntry.SetText(strconv.Itoa(p.PiecesPerBox))
	priceEntry := widget.NewEntry()
	priceEntry.SetText(fmt.Sprintf("%.2f", p.PricePerBox))

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width", widthEntry),
			widget.NewFormItem("Height", heightEntry),
			widget.NewFormItem("Material", materialEntry),
			widget.NewFormItem("Planks per Box", perBoxEntry),
			widget.NewFormItem("Price per Box", priceEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			err := parsePreset(presetFields{
				name:     nameEntry.Text,
				width:    widthEntry.Text,
				height:   heightEntry.Text,
				material: materialEntry.Text,
				perBox:   perBoxEntry.Text,
				price:    priceEntry.Text,
			}, &p)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			if existing != nil {
				*existing = p
			} else {
				a.inventory.Planks = append(a.inventory.Planks, p)
			}
			a.saveInventory()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(450, 400))
	form.Show()
}

// applyPreset puts the preset's plank size into the side panel and recalculates.
func (a *App) applyPreset(p model.PlankPreset) {
	cfg := a.formConfig()
	p.ApplyToLayout(&cfg)
	a.preset = &p
	a.setForm(cfg)
	a.apply(cfg, "Plank "+p.Name)
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importInventory(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportInventory(reader.URI().Path(), a.inventory)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.inventory = merged
		a.saveInventory()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Inventory now contains %d plank presets.", len(a.inventory.Planks)),
			a.window)
	}, a.window)
}

func (a *App) exportInventory() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := project.ExportInventory(path, a.inventory); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Inventory exported to %s", path),
				a.window)
		}
	}, a.window)
	d.SetFileName("inventory.json")
	d.Show()
}

// saveInventory persists the current inventory to disk.
func (a *App) saveInventory() {
	if a.inventoryPath == "" {
		return
	}
	if err := project.SaveInventory(a.inventoryPath, a.inventory); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save inventory: %w", err), a.window)
	}
}
