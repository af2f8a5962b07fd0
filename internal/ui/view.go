package ui

import (
	"fyne.io/fyne/v2"

	"github.com/piwi3910/PlankLayout/internal/model"
)

// Zoom limits of the floor view, in pixels per layout unit.
const (
	ZoomMin     = 0.1
	ZoomMax     = 3.0
	ZoomStep    = 0.05
	ZoomDefault = 1.0

	panStep = 8 // Pixels per pan key press
)

// clampZoom limits z to [ZoomMin, ZoomMax].
func clampZoom(z float32) float32 {
	switch {
	case z < ZoomMin:
		return ZoomMin
	case z > ZoomMax:
		return ZoomMax
	default:
		return z
	}
}

// zoomBy returns z moved by steps zoom steps, clamped.
func zoomBy(z, steps float32) float32 {
	return clampZoom(z + steps*ZoomStep)
}

// panForKey maps WASD and the arrow keys to a scroll offset delta.
func panForKey(key fyne.KeyName) (dx, dy float32, ok bool) {
	switch key {
	case fyne.KeyRight, fyne.KeyD:
		return panStep, 0, true
	case fyne.KeyLeft, fyne.KeyA:
		return -panStep, 0, true
	case fyne.KeyUp, fyne.KeyW:
		return 0, -panStep, true
	case fyne.KeyDown, fyne.KeyS:
		return 0, panStep, true
	}
	return 0, 0, false
}

// adjustForKey fine-tunes the room (U I O P) or plank (H J K L) size by one
// unit within the slider ranges. It reports whether key was handled.
func adjustForKey(key fyne.KeyName, cfg *model.LayoutConfig, ranges model.AppConfig) bool {
	switch key {
	case fyne.KeyU:
		cfg.Room.Width = ranges.RoomRange.Clamp(cfg.Room.Width - 1)
	case fyne.KeyI:
		cfg.Room.Width = ranges.RoomRange.Clamp(cfg.Room.Width + 1)
	case fyne.KeyO:
		cfg.Room.Height = ranges.RoomRange.Clamp(cfg.Room.Height - 1)
	case fyne.KeyP:
		cfg.Room.Height = ranges.RoomRange.Clamp(cfg.Room.Height + 1)
	case fyne.KeyH:
		cfg.Plank.Width = ranges.PlankWidthRange.Clamp(cfg.Plank.Width - 1)
	case fyne.KeyJ:
		cfg.Plank.Width = ranges.PlankWidthRange.Clamp(cfg.Plank.Width + 1)
	case fyne.KeyK:
		cfg.Plank.Height = ranges.PlankHeightRange.Clamp(cfg.Plank.Height - 1)
	case fyne.KeyL:
		cfg.Plank.Height = ranges.PlankHeightRange.Clamp(cfg.Plank.Height + 1)
	default:
		return false
	}
	return true
}

// clampOffset keeps a scroll offset within [0, content-viewport].
func clampOffset(offset, content, viewport float32) float32 {
	limit := content - viewport
	if offset > limit {
		offset = limit
	}
	if offset < 0 {
		return 0
	}
	return offset
}
