package models

import "sync"

// ThemeVariant names the requested UI appearance.
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// DefaultDigitCap is the maximum number of digits accepted per numeral.
// Sixteen significant digits is the display limit of a float64.
const DefaultDigitCap = 16

// Preferences holds user-facing settings. Theme mirrors the host OS by
// default and has no business-logic impact.
type Preferences struct {
	mu       sync.RWMutex
	theme    ThemeVariant
	digitCap int
}

// NewPreferences creates preferences with defaults.
func NewPreferences() *Preferences {
	return &Preferences{
		theme:    ThemeSystem,
		digitCap: DefaultDigitCap,
	}
}

// Theme returns the requested theme variant.
func (p *Preferences) Theme() ThemeVariant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// SetTheme records the requested theme variant. Unknown values fall
// back to the system default.
func (p *Preferences) SetTheme(v ThemeVariant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch v {
	case ThemeLight, ThemeDark, ThemeSystem:
		p.theme = v
	default:
		p.theme = ThemeSystem
	}
}

// DigitCap returns the per-numeral digit limit.
func (p *Preferences) DigitCap() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.digitCap
}

// SetDigitCap overrides the per-numeral digit limit. Non-positive
// values are ignored.
func (p *Preferences) SetDigitCap(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.digitCap = n
}
