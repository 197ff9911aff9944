package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Keypad is the button grid: digits, operators, parens, percent, sign,
// backspace, clear keys and equals.
type Keypad struct {
	container *fyne.Container

	// Event handlers
	digitHandler      func(string)
	operatorHandler   func(string)
	equalsHandler     func()
	clearHandler      func()
	clearEntryHandler func()
	backspaceHandler  func()
	percentHandler    func()
	signHandler       func()
	parenHandler      func()
}

// NewKeypad creates the keypad component.
func NewKeypad() *Keypad {
	k := &Keypad{}
	k.buildLayout()
	return k
}

func (k *Keypad) buildLayout() {
	equals := k.actionButton("=", func() {
		if k.equalsHandler != nil {
			k.equalsHandler()
		}
	})
	equals.Importance = widget.HighImportance

	k.container = container.NewGridWithColumns(4,
		k.actionButton("C", func() { k.fire(k.clearHandler) }),
		k.actionButton("CE", func() { k.fire(k.clearEntryHandler) }),
		k.actionButton("( )", func() { k.fire(k.parenHandler) }),
		k.actionButton("⌫", func() { k.fire(k.backspaceHandler) }),

		k.digitButton("7"), k.digitButton("8"), k.digitButton("9"), k.operatorButton("/"),
		k.digitButton("4"), k.digitButton("5"), k.digitButton("6"), k.operatorButton("*"),
		k.digitButton("1"), k.digitButton("2"), k.digitButton("3"), k.operatorButton("-"),

		k.actionButton("±", func() { k.fire(k.signHandler) }),
		k.digitButton("0"),
		k.digitButton("."),
		k.operatorButton("+"),

		k.actionButton("%", func() { k.fire(k.percentHandler) }),
		equals,
	)
}

func (k *Keypad) fire(handler func()) {
	if handler != nil {
		handler()
	}
}

func (k *Keypad) actionButton(label string, tapped func()) *widget.Button {
	return widget.NewButton(label, tapped)
}

func (k *Keypad) digitButton(token string) *widget.Button {
	return widget.NewButton(token, func() {
		if k.digitHandler != nil {
			k.digitHandler(token)
		}
	})
}

func (k *Keypad) operatorButton(op string) *widget.Button {
	return widget.NewButton(op, func() {
		if k.operatorHandler != nil {
			k.operatorHandler(op)
		}
	})
}

// Handler setters - called by the view wiring.

func (k *Keypad) SetDigitHandler(handler func(string)) {
	k.digitHandler = handler
}

func (k *Keypad) SetOperatorHandler(handler func(string)) {
	k.operatorHandler = handler
}

func (k *Keypad) SetEqualsHandler(handler func()) {
	k.equalsHandler = handler
}

func (k *Keypad) SetClearHandler(handler func()) {
	k.clearHandler = handler
}

func (k *Keypad) SetClearEntryHandler(handler func()) {
	k.clearEntryHandler = handler
}

func (k *Keypad) SetBackspaceHandler(handler func()) {
	k.backspaceHandler = handler
}

func (k *Keypad) SetPercentHandler(handler func()) {
	k.percentHandler = handler
}

func (k *Keypad) SetSignHandler(handler func()) {
	k.signHandler = handler
}

func (k *Keypad) SetParenHandler(handler func()) {
	k.parenHandler = handler
}

// GetContainer returns the keypad container.
func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}
