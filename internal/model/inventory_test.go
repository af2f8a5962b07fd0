package model

import "testing"

func TestNewPlankPresetWithPrice(t *testing.T) {
	p := NewPlankPresetWithPrice("Oak 1200x180", 1200, 180, "Oak", 6, 54.90)
	if p.PricePerBox != 54.90 {
		t.Errorf("expected price 54.90, got %.2f", p.PricePerBox)
	}
	if p.Name != "Oak 1200x180" || p.Material != "Oak" {
		t.Errorf("unexpected preset %+v", p)
	}
	if len(p.ID) != 8 {
		t.Errorf("expected 8 character id, got %q", p.ID)
	}
}

func TestPlankPresetApplyToLayout(t *testing.T) {
	p := NewPlankPreset("Parquet", 600, 90, "Oak", 24)
	l := DefaultLayoutConfig()
	p.ApplyToLayout(&l)
	if l.Plank != (Dimensions{Width: 600, Height: 90}) {
		t.Errorf("expected plank 600x90, got %s", l.Plank)
	}
}

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Planks) == 0 {
		t.Fatal("expected default plank presets")
	}
	ids := make(map[string]bool)
	for _, p := range inv.Planks {
		if ids[p.ID] {
			t.Errorf("duplicate id %s", p.ID)
		}
		ids[p.ID] = true
		if !p.Dimensions().Positive() {
			t.Errorf("preset %s has non-positive size", p.Name)
		}
	}
	if len(inv.PlankNames()) != len(inv.Planks) {
		t.Error("PlankNames length mismatch")
	}
}

func TestInventoryFindAndRemove(t *testing.T) {
	inv := DefaultInventory()
	first := inv.Planks[0]

	if found := inv.FindPlankByID(first.ID); found == nil || found.Name != first.Name {
		t.Errorf("expected to find %s by id", first.Name)
	}
	if found := inv.FindPlankByName(first.Name); found == nil || found.ID != first.ID {
		t.Errorf("expected to find %s by name", first.Name)
	}
	if inv.FindPlankByID("missing") != nil {
		t.Error("expected nil for unknown id")
	}

	count := len(inv.Planks)
	if !inv.RemovePlank(first.ID) {
		t.Fatal("expected RemovePlank to succeed")
	}
	if len(inv.Planks) != count-1 {
		t.Errorf("expected %d presets, got %d", count-1, len(inv.Planks))
	}
	if inv.RemovePlank(first.ID) {
		t.Error("second removal should report false")
	}
}
