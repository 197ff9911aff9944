package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"quickcalc/internal/models"
)

// TestLoad_Defaults verifies the zero-flag configuration.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.Equal(t, models.ThemeSystem, cfg.Theme)
	require.Equal(t, models.DefaultDigitCap, cfg.DigitCap)
}

// TestLoad_Flags verifies explicit flags win.
func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{"--log-level", "debug", "--theme", "dark", "--digit-cap", "10"})
	require.NoError(t, err)

	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.Equal(t, models.ThemeDark, cfg.Theme)
	require.Equal(t, 10, cfg.DigitCap)
}

// TestLoad_RejectsUnknownLevel verifies the enum guard.
func TestLoad_RejectsUnknownLevel(t *testing.T) {
	_, err := Load([]string{"--log-level", "loud"})
	require.Error(t, err)
}

// TestLoad_EnvFile verifies an env file feeds the environment-backed
// flags.
func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickcalc.env")
	require.NoError(t, os.WriteFile(path, []byte("QUICKCALC_THEME=light\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QUICKCALC_THEME") })

	cfg, err := Load([]string{"--env-file", path})
	require.NoError(t, err)
	require.Equal(t, models.ThemeLight, cfg.Theme)
}

// TestLoad_NonPositiveDigitCap falls back to the default.
func TestLoad_NonPositiveDigitCap(t *testing.T) {
	cfg, err := Load([]string{"--digit-cap", "-3"})
	require.NoError(t, err)
	require.Equal(t, models.DefaultDigitCap, cfg.DigitCap)
}
