package theme

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"quickcalc/internal/models"
)

// TestLoadStore verifies the variant round-trips through preferences
// and unknown stored values fall back to system mirroring.
func TestLoadStore(t *testing.T) {
	app := test.NewApp()

	require.Equal(t, models.ThemeSystem, Load(app))

	Store(app, models.ThemeDark)
	require.Equal(t, models.ThemeDark, Load(app))

	app.Preferences().SetString(preferenceKey, "neon")
	require.Equal(t, models.ThemeSystem, Load(app))
}

// TestApply verifies each variant installs without panicking; the
// rendered colors are the toolkit's business.
func TestApply(t *testing.T) {
	app := test.NewApp()

	Apply(app, models.ThemeLight)
	Apply(app, models.ThemeDark)
	Apply(app, models.ThemeSystem)
}
