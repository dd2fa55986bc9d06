package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GalleryTheme darkens the chrome around photos and tightens paddings so
// the carousel dominates the window.
type GalleryTheme struct{}

// NewGalleryTheme creates the gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 12, G: 12, B: 14, A: 255} // Near-black for photo viewing
	case theme.ColorNameForeground:
		return color.RGBA{R: 235, G: 235, B: 235, A: 255} // Light text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 66, G: 133, B: 244, A: 255} // Blue for actions
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	}

	// Use default dark-variant colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	}

	return theme.DefaultTheme().Size(name)
}
