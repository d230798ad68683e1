// Package ui provides the desktop viewer for the Mobius strip engine.
//
// This file defines a compact Fyne theme for a dense parameter layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// systemVariant marks "follow the OS" instead of a fixed light/dark variant.
const systemVariant fyne.ThemeVariant = 255

// MobiusTheme wraps the default Fyne theme with compact sizing overrides.
type MobiusTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewMobiusTheme creates a MobiusTheme that follows the system variant.
func NewMobiusTheme() *MobiusTheme {
	return &MobiusTheme{
		base:    theme.DefaultTheme(),
		variant: systemVariant,
	}
}

// NewMobiusThemeFromName creates a MobiusTheme from a config value:
// "light", "dark" or anything else for the system default.
func NewMobiusThemeFromName(name string) *MobiusTheme {
	t := NewMobiusTheme()
	t.SetVariant(variantFromName(name))
	return t
}

func variantFromName(name string) fyne.ThemeVariant {
	switch name {
	case "light":
		return theme.VariantLight
	case "dark":
		return theme.VariantDark
	default:
		return systemVariant
	}
}

// SetVariant updates the theme variant.
func (t *MobiusTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme, forcing the stored variant unless the
// theme follows the system.
func (t *MobiusTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != systemVariant {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *MobiusTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *MobiusTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *MobiusTheme) Size(name fyne.ThemeSizeName) float32 {
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
