package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the last action and the memory register value.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	memoryInfo  *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.memoryInfo = widget.NewLabel("Memory: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.memoryInfo,
	)
}

// SetStatus updates the main status message.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetMemoryInfo updates the memory register display. An empty value
// shows the register as unset.
func (sb *StatusBar) SetMemoryInfo(value string) {
	fyne.Do(func() {
		if value == "" {
			sb.memoryInfo.SetText("Memory: --")
			return
		}
		sb.memoryInfo.SetText("Memory: " + value)
	})
}

// Reset restores the initial state.
func (sb *StatusBar) Reset() {
	fyne.Do(func() {
		sb.statusLabel.SetText("Ready")
		sb.memoryInfo.SetText("Memory: --")
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
