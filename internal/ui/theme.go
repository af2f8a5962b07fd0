// Package ui provides the PlankLayout desktop application.
//
// This file defines a compact Fyne theme for the layout window.

package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PlankLayoutTheme wraps the default Fyne theme with compact sizing and an
// optional forced light/dark variant.
type PlankLayoutTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant // nil follows the system
}

// NewPlankLayoutTheme creates a theme that follows the system variant.
func NewPlankLayoutTheme() *PlankLayoutTheme {
	return &PlankLayoutTheme{base: theme.DefaultTheme()}
}

// NewPlankLayoutThemeForName creates a theme from a preference value:
// "light", "dark", or anything else for the system variant.
func NewPlankLayoutThemeForName(name string) *PlankLayoutTheme {
	t := NewPlankLayoutTheme()
	if v, ok := themeVariant(name); ok {
		t.SetVariant(v)
	}
	return t
}

// SetVariant forces the light or dark variant.
func (t *PlankLayoutTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = &variant
}

// themeVariant maps a preference name to a forced variant. ok is false for
// "system" and unknown names.
func themeVariant(name string) (fyne.ThemeVariant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return theme.VariantLight, true
	case "dark":
		return theme.VariantDark, true
	default:
		return 0, false
	}
}

// Color delegates to the base theme, with the forced variant if any.
func (t *PlankLayoutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *PlankLayoutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *PlankLayoutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for the side panel and dialogs.
func (t *PlankLayoutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
