package model

import "github.com/google/uuid"

// PlankPreset is a reusable plank definition, e.g. a product from a flooring range.
type PlankPreset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Material     string  `json:"material"`
	PiecesPerBox int     `json:"pieces_per_box"`
	PricePerBox  float64 `json:"price_per_box"`
}

// NewPlankPreset creates a new PlankPreset with a generated ID.
func NewPlankPreset(name string, width, height int, material string, piecesPerBox int) PlankPreset {
	return PlankPreset{
		ID:           uuid.New().String()[:8],
		Name:         name,
		Width:        width,
		Height:       height,
		Material:     material,
		PiecesPerBox: piecesPerBox,
	}
}

// NewPlankPresetWithPrice creates a PlankPreset carrying a box price.
func NewPlankPresetWithPrice(name string, width, height int, material string, piecesPerBox int, pricePerBox float64) PlankPreset {
	p := NewPlankPreset(name, width, height, material, piecesPerBox)
	p.PricePerBox = pricePerBox
	return p
}

// Dimensions returns the plank size of the preset.
func (p PlankPreset) Dimensions() Dimensions {
	return Dimensions{Width: p.Width, Height: p.Height}
}

// ApplyToLayout sets the plank size of l from this preset.
func (p PlankPreset) ApplyToLayout(l *LayoutConfig) {
	l.Plank = p.Dimensions()
}

// Inventory holds the user's saved plank presets.
type Inventory struct {
	Planks []PlankPreset `json:"planks"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	return Inventory{
		Planks: []PlankPreset{
			NewPlankPreset("Demo 130x25", 130, 25, "Demo", 8),
			NewPlankPreset("Oak 1200x180", 1200, 180, "Oak", 6),
			NewPlankPreset("Oak 1380x193", 1380, 193, "Oak", 8),
			NewPlankPreset("Laminate 1285x192", 1285, 192, "Laminate", 8),
			NewPlankPreset("Vinyl 1220x180", 1220, 180, "Vinyl", 10),
			NewPlankPreset("Parquet 600x90", 600, 90, "Parquet", 24),
		},
	}
}

// FindPlankByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindPlankByID(id string) *PlankPreset {
	for i := range inv.Planks {
		if inv.Planks[i].ID == id {
			return &inv.Planks[i]
		}
	}
	return nil
}

// FindPlankByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindPlankByName(name string) *PlankPreset {
	for i := range inv.Planks {
		if inv.Planks[i].Name == name {
			return &inv.Planks[i]
		}
	}
	return nil
}

// PlankNames returns a list of preset names for UI dropdowns.
func (inv *Inventory) PlankNames() []string {
	names := make([]string, len(inv.Planks))
	for i, p := range inv.Planks {
		names[i] = p.Name
	}
	return names
}

// RemovePlank deletes the preset with the given ID and reports whether it existed.
func (inv *Inventory) RemovePlank(id string) bool {
	for i := range inv.Planks {
		if inv.Planks[i].ID == id {
			inv.Planks = append(inv.Planks[:i], inv.Planks[i+1:]...)
			return true
		}
	}
	return false
}
