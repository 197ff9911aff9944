package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"quickcalc/internal/models"
)

// Display shows the equation history line, the numeral being typed,
// and the memory indicator.
type Display struct {
	container     *fyne.Container
	equationLabel *widget.Label
	numeralLabel  *widget.Label
	memoryBadge   *widget.Label
}

// NewDisplay creates the display component.
func NewDisplay() *Display {
	d := &Display{}
	d.createComponents()
	d.buildLayout()
	return d
}

func (d *Display) createComponents() {
	d.equationLabel = widget.NewLabel("")
	d.equationLabel.Alignment = fyne.TextAlignTrailing

	d.numeralLabel = widget.NewLabel("0")
	d.numeralLabel.Alignment = fyne.TextAlignTrailing
	d.numeralLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}

	d.memoryBadge = widget.NewLabel(" ")
	d.memoryBadge.TextStyle = fyne.TextStyle{Bold: true}
}

func (d *Display) buildLayout() {
	numeralRow := container.NewBorder(nil, nil, d.memoryBadge, nil, d.numeralLabel)
	d.container = container.NewVBox(
		d.equationLabel,
		numeralRow,
	)
}

// Update renders an expression snapshot. A transient error replaces
// the numeral until the next input.
func (d *Display) Update(snapshot models.ExpressionSnapshot, memorySet bool) {
	fyne.Do(func() {
		d.equationLabel.SetText(snapshot.Equation)
		if snapshot.Error != "" {
			d.numeralLabel.SetText(snapshot.Error)
		} else {
			d.numeralLabel.SetText(snapshot.Display)
		}
		if memorySet {
			d.memoryBadge.SetText("M")
		} else {
			d.memoryBadge.SetText(" ")
		}
	})
}

// GetContainer returns the display container.
func (d *Display) GetContainer() *fyne.Container {
	return d.container
}
