// Package theme applies the light/dark appearance preference. The
// variant mirrors the host OS by default and is persisted through fyne
// Preferences; it has no effect on calculator behavior.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"quickcalc/internal/models"
)

const preferenceKey = "themeVariant"

// forcedVariant wraps the default theme and pins its variant, ignoring
// the OS setting.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// Apply switches the application to the requested variant. The system
// variant restores OS mirroring.
func Apply(app fyne.App, v models.ThemeVariant) {
	switch v {
	case models.ThemeLight:
		app.Settings().SetTheme(&forcedVariant{Theme: fynetheme.DefaultTheme(), variant: fynetheme.VariantLight})
	case models.ThemeDark:
		app.Settings().SetTheme(&forcedVariant{Theme: fynetheme.DefaultTheme(), variant: fynetheme.VariantDark})
	default:
		app.Settings().SetTheme(fynetheme.DefaultTheme())
	}
}

// Load reads the persisted variant, defaulting to system mirroring.
func Load(app fyne.App) models.ThemeVariant {
	stored := app.Preferences().StringWithFallback(preferenceKey, string(models.ThemeSystem))
	switch models.ThemeVariant(stored) {
	case models.ThemeLight, models.ThemeDark:
		return models.ThemeVariant(stored)
	default:
		return models.ThemeSystem
	}
}

// Store persists the variant for the next session.
func Store(app fyne.App, v models.ThemeVariant) {
	app.Preferences().SetString(preferenceKey, string(v))
}
