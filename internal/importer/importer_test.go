package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/PlankLayout/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Room,Width,Height\nHall,560,400\nKitchen,400,300\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Room;Width;Height\nHall;560;400\nKitchen;400;300\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Room\tWidth\tHeight\nHall\t560\t400\nKitchen\t400\t300\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Room|Width|Height\nHall|560|400\nKitchen|400|300\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Room", "Width", "Height", "Plank Width", "Plank Height", "Staggered"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	want := ColumnMapping{Label: 0, Width: 1, Height: 2, PlankWidth: 3, PlankHeight: 4, Staggered: 5}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	row := []string{"NAME", "LENGTH", "DEPTH", "PW", "PH", "STAGGER"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 {
		t.Errorf("unexpected room columns: %+v", mapping)
	}
	if mapping.PlankWidth != 3 || mapping.PlankHeight != 4 || mapping.Staggered != 5 {
		t.Errorf("unexpected plank columns: %+v", mapping)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Height", "Name", "Width"}
	mapping, _ := DetectColumns(row)

	if mapping.Height != 0 || mapping.Label != 1 || mapping.Width != 2 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.PlankWidth != -1 || mapping.Staggered != -1 {
		t.Errorf("absent columns should be -1: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Hall", "560", "400"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header")
	}
	if mapping.Label != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.PlankWidth != 3 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── ImportCSVFromReader Tests ─────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	input := "Room,Width,Height\nHall,560,400\nKitchen,400,300\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}
	hall := result.Rooms[0]
	if hall.Label != "Hall" {
		t.Errorf("expected label 'Hall', got '%s'", hall.Label)
	}
	if hall.Size != (model.Dimensions{Width: 560, Height: 400}) {
		t.Errorf("expected 560x400, got %s", hall.Size)
	}
	if hall.Plank != nil || hall.Staggered != nil {
		t.Error("expected plank and stagger to be unset")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	input := "Hall,560,400,130,25,yes\nKitchen,400,300\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	hall := result.Rooms[0]
	if hall.Plank == nil || *hall.Plank != (model.Dimensions{Width: 130, Height: 25}) {
		t.Errorf("expected plank 130x25, got %v", hall.Plank)
	}
	if hall.Staggered == nil || !*hall.Staggered {
		t.Error("expected staggered=true")
	}
}

func TestImportCSVFromReader_UnknownHeaderSkipped(t *testing.T) {
	input := "Zimmer,Breite,Tiefe\nHall,560,400\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	input := "Room,Width,Height\nHall,abc,400\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Invalid width") {
		t.Errorf("unexpected error: %s", result.Errors[0])
	}
	if !strings.Contains(result.Errors[0], "Line 2") {
		t.Errorf("expected line number in error: %s", result.Errors[0])
	}
}

func TestImportCSVFromReader_NonPositiveValues(t *testing.T) {
	input := "Room,Width,Height\nHall,-560,400\nKitchen,400,0\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(result.Rooms))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_PartialPlank(t *testing.T) {
	input := "Room,Width,Height,Plank Width,Plank Height\nHall,560,400,130,\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 0 {
		t.Errorf("expected row with half a plank size to be rejected")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "plank height") {
		t.Errorf("expected missing plank height error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	input := "Room,Width,Height\nHall,560,400\nBad,xyz,300\nKitchen,400,300\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 2 {
		t.Errorf("expected 2 valid rooms, got %d", len(result.Rooms))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestImportCSVFromReader_EmptyRowsAndLabels(t *testing.T) {
	input := "Room,Width,Height\n,560,400\n\n,,\nKitchen,400,300\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	if result.Rooms[0].Label != "Room 1" {
		t.Errorf("expected generated label 'Room 1', got '%s'", result.Rooms[0].Label)
	}
}

func TestImportCSVFromReader_StaggerParsing(t *testing.T) {
	input := "Room,Width,Height,Staggered\nA,100,100,yes\nB,100,100,no\nC,100,100,maybe\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Rooms) != 3 {
		t.Fatalf("expected 3 rooms, got %d", len(result.Rooms))
	}
	if result.Rooms[0].Staggered == nil || !*result.Rooms[0].Staggered {
		t.Error("expected A staggered")
	}
	if result.Rooms[1].Staggered == nil || *result.Rooms[1].Staggered {
		t.Error("expected B not staggered")
	}
	if result.Rooms[2].Staggered != nil {
		t.Error("expected C to keep the default")
	}

	hasWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "maybe") {
			hasWarning = true
		}
	}
	if !hasWarning {
		t.Error("expected warning about unknown stagger value")
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	input := "Room,Width,Staggered\nHall,560,yes\n"
	result := ImportCSVFromReader(strings.NewReader(input), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Height column")
	}
	if !strings.Contains(result.Errors[0], "Height") {
		t.Errorf("expected error to mention Height, got: %s", result.Errors[0])
	}
}

// ─── File Import Tests ─────────────────────────────────────

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.csv")
	content := "Room;Width;Height\nHall;560;400\nKitchen;400;300\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportFile(path)

	if len(result.Rooms) != 2 {
		t.Errorf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Room", "Width", "Height", "Plank Width", "Plank Height"},
		{"Hall", 560, 400, 130, 25},
		{"Kitchen", 400, 300},
	})

	result := ImportFile(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(result.Rooms))
	}
	if result.Rooms[0].Label != "Hall" {
		t.Errorf("expected 'Hall', got '%s'", result.Rooms[0].Label)
	}
	if result.Rooms[0].Plank == nil || result.Rooms[0].Plank.Width != 130 {
		t.Errorf("expected plank width 130, got %v", result.Rooms[0].Plank)
	}
	if result.Rooms[1].Plank != nil {
		t.Error("expected Kitchen to use the default plank")
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Hall", 560, 400},
		{"Kitchen", 400, 300},
	})

	result := ImportExcel(path)

	if len(result.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d (errors: %v)", len(result.Rooms), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Room", "Width", "Height"},
		{"Hall", "abc", 400},
	})

	result := ImportExcel(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
}

// ─── Room Tests ────────────────────────────────────────────

func TestRoomLayout(t *testing.T) {
	base := model.DefaultLayoutConfig()
	no := false
	room := Room{
		Label:     "Hall",
		Size:      model.Dimensions{Width: 300, Height: 200},
		Plank:     &model.Dimensions{Width: 90, Height: 20},
		Staggered: &no,
	}

	cfg := room.Layout(base)

	if cfg.Room != room.Size {
		t.Errorf("expected room %s, got %s", room.Size, cfg.Room)
	}
	if cfg.Plank != *room.Plank {
		t.Errorf("expected plank %s, got %s", *room.Plank, cfg.Plank)
	}
	if cfg.Staggered {
		t.Error("expected staggered=false")
	}

	plain := Room{Size: model.Dimensions{Width: 300, Height: 200}}.Layout(base)
	if plain.Plank != base.Plank || plain.Staggered != base.Staggered {
		t.Errorf("expected base plank and stagger, got %+v", plain)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		ok    bool
	}{
		{"yes", true, true},
		{"TRUE", true, true},
		{"x", true, true},
		{" 1 ", true, true},
		{"no", false, true},
		{"-", false, true},
		{"sometimes", false, false},
	}
	for _, tt := range tests {
		got, ok := parseBool(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseBool(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
