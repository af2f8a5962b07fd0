package model

// Range is an inclusive slider range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp limits v to the range.
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new layouts
	DefaultRoom             Dimensions `json:"default_room"`
	DefaultPlank            Dimensions `json:"default_plank"`
	DefaultStaggered        bool       `json:"default_staggered"`
	DefaultRandomizeLengths bool       `json:"default_randomize_lengths"`

	// Slider ranges for the desktop UI
	RoomRange        Range `json:"room_range"`
	PlankWidthRange  Range `json:"plank_width_range"`
	PlankHeightRange Range `json:"plank_height_range"`

	// Purchase estimate defaults
	PiecesPerBox int     `json:"pieces_per_box"`
	WastePercent float64 `json:"waste_percent"`
	PricePerBox  float64 `json:"price_per_box"`

	// Application preferences
	RecentLayouts []string `json:"recent_layouts"`
	Theme         string   `json:"theme"` // "light", "dark", "system"
	LogLevel      string   `json:"log_level"`
}

// DefaultAppConfig returns an AppConfig populated with defaults
// matching DefaultLayoutConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultLayoutConfig()
	return AppConfig{
		DefaultRoom:             defaults.Room,
		DefaultPlank:            defaults.Plank,
		DefaultStaggered:        defaults.Staggered,
		DefaultRandomizeLengths: defaults.RandomizeLengths,
		RoomRange:               Range{Min: 200, Max: 801},
		PlankWidthRange:         Range{Min: 60, Max: 301},
		PlankHeightRange:        Range{Min: 10, Max: 100},
		PiecesPerBox:            8,
		WastePercent:            10,
		PricePerBox:             0,
		RecentLayouts:           []string{},
		Theme:                   "system",
		LogLevel:                "info",
	}
}

// ApplyToLayout copies the default values from AppConfig into a LayoutConfig.
func (c AppConfig) ApplyToLayout(l *LayoutConfig) {
	l.Room = c.DefaultRoom
	l.Plank = c.DefaultPlank
	l.Staggered = c.DefaultStaggered
	l.RandomizeLengths = c.DefaultRandomizeLengths
}

// Layout returns a LayoutConfig built from the defaults.
func (c AppConfig) Layout() LayoutConfig {
	var l LayoutConfig
	c.ApplyToLayout(&l)
	return l
}

// AddRecentLayout moves path to the front of RecentLayouts, keeping at most max entries.
func (c *AppConfig) AddRecentLayout(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recent = append(recent, p)
		}
	}
	if max > 0 && len(recent) > max {
		recent = recent[:max]
	}
	c.RecentLayouts = recent
}
