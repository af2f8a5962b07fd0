package model

import "testing"

func TestDefaultAppConfigMatchesDefaultLayout(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultLayoutConfig()

	if cfg.DefaultRoom != defaults.Room {
		t.Errorf("room mismatch: config=%s layout=%s", cfg.DefaultRoom, defaults.Room)
	}
	if cfg.DefaultPlank != defaults.Plank {
		t.Errorf("plank mismatch: config=%s layout=%s", cfg.DefaultPlank, defaults.Plank)
	}
	if cfg.DefaultStaggered != defaults.Staggered {
		t.Errorf("staggered mismatch: config=%v layout=%v", cfg.DefaultStaggered, defaults.Staggered)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil")
	}
}

func TestApplyToLayout(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultRoom = Dimensions{Width: 300, Height: 250}
	cfg.DefaultPlank = Dimensions{Width: 90, Height: 20}
	cfg.DefaultRandomizeLengths = true

	var l LayoutConfig
	cfg.ApplyToLayout(&l)

	if l.Room.Width != 300 || l.Room.Height != 250 {
		t.Errorf("expected room 300x250, got %s", l.Room)
	}
	if l.Plank.Width != 90 || l.Plank.Height != 20 {
		t.Errorf("expected plank 90x20, got %s", l.Plank)
	}
	if !l.RandomizeLengths {
		t.Error("expected RandomizeLengths=true")
	}
	if cfg.Layout() != l {
		t.Error("Layout() should match ApplyToLayout")
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 60, Max: 301}
	if r.Clamp(10) != 60 {
		t.Errorf("expected 60, got %d", r.Clamp(10))
	}
	if r.Clamp(400) != 301 {
		t.Errorf("expected 301, got %d", r.Clamp(400))
	}
	if r.Clamp(130) != 130 {
		t.Errorf("expected 130, got %d", r.Clamp(130))
	}
}

func TestAddRecentLayout(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentLayout("a.hcl", 2)
	cfg.AddRecentLayout("b.hcl", 2)
	cfg.AddRecentLayout("a.hcl", 2)
	cfg.AddRecentLayout("c.hcl", 2)

	if len(cfg.RecentLayouts) != 2 {
		t.Fatalf("expected 2 recent layouts, got %d", len(cfg.RecentLayouts))
	}
	if cfg.RecentLayouts[0] != "c.hcl" || cfg.RecentLayouts[1] != "a.hcl" {
		t.Errorf("unexpected order %v", cfg.RecentLayouts)
	}
}
