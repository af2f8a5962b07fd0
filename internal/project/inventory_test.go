package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PlankLayout/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path, err := DefaultInventoryPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir != ".planklayout" {
		t.Errorf("expected parent dir .planklayout, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test_inventory.json")

	inv := model.Inventory{
		Planks: []model.PlankPreset{
			model.NewPlankPresetWithPrice("Test Oak", 1200, 180, "Oak", 6, 54.5),
		},
	}

	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("inventory file was not created")
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Planks) != 1 {
		t.Fatalf("expected 1 plank, got %d", len(loaded.Planks))
	}
	got := loaded.Planks[0]
	if got.Name != "Test Oak" {
		t.Errorf("expected plank name 'Test Oak', got %q", got.Name)
	}
	if got.Width != 1200 || got.Height != 180 {
		t.Errorf("expected 1200x180, got %dx%d", got.Width, got.Height)
	}
	if got.PricePerBox != 54.5 {
		t.Errorf("expected price 54.5, got %f", got.PricePerBox)
	}
	if got.ID != inv.Planks[0].ID {
		t.Errorf("expected ID %s to survive, got %s", inv.Planks[0].ID, got.ID)
	}
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nonexistent", "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Planks) == 0 {
		t.Error("expected default planks, got none")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("expected default inventory file to be created")
	}
}

func TestLoadInventoryInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("[["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInventory(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestImportInventory(t *testing.T) {
	tmpDir := t.TempDir()

	existing := model.Inventory{
		Planks: []model.PlankPreset{
			{ID: "plank-001", Name: "Existing Oak", Width: 1200, Height: 180},
		},
	}
	imported := model.Inventory{
		Planks: []model.PlankPreset{
			{ID: "plank-001", Name: "Duplicate Oak", Width: 1200, Height: 180}, // same ID, skipped
			{ID: "plank-002", Name: "New Vinyl", Width: 1220, Height: 180},     // new, added
		},
	}

	importPath := filepath.Join(tmpDir, "import.json")
	data, err := json.Marshal(imported)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(importPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportInventory(importPath, existing)
	if err != nil {
		t.Fatalf("ImportInventory failed: %v", err)
	}
	if len(merged.Planks) != 2 {
		t.Fatalf("expected 2 planks after merge, got %d", len(merged.Planks))
	}
	if merged.Planks[0].Name != "Existing Oak" {
		t.Errorf("expected existing preset to win, got %q", merged.Planks[0].Name)
	}
	if merged.Planks[1].Name != "New Vinyl" {
		t.Errorf("expected New Vinyl appended, got %q", merged.Planks[1].Name)
	}
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	merged, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(merged.Planks) != len(existing.Planks) {
		t.Error("existing inventory should be returned unchanged on error")
	}
}

func TestExportInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exported.json")
	inv := model.DefaultInventory()

	if err := ExportInventory(path, inv); err != nil {
		t.Fatalf("ExportInventory failed: %v", err)
	}
	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Planks) != len(inv.Planks) {
		t.Errorf("expected %d planks, got %d", len(inv.Planks), len(loaded.Planks))
	}
}
