package views

import (
	"fyne.io/fyne/v2"
)

// bindKeyboard routes window-level key events to the same handlers the
// keypad buttons use: digits and '.' append, "+ - * /" add operators,
// Enter or '=' evaluates, Escape clears, Backspace deletes, '%'
// applies percent, parens insert.
func (mv *MainView) bindKeyboard() {
	canvas := mv.window.Canvas()

	canvas.SetOnTypedRune(func(r rune) {
		switch {
		case r >= '0' && r <= '9':
			if mv.digitHandler != nil {
				mv.digitHandler(string(r))
			}
		case r == '.':
			if mv.digitHandler != nil {
				mv.digitHandler(".")
			}
		case r == '+' || r == '-' || r == '*' || r == '/':
			if mv.operatorHandler != nil {
				mv.operatorHandler(string(r))
			}
		case r == '=':
			if mv.equalsHandler != nil {
				mv.equalsHandler()
			}
		case r == '%':
			if mv.percentHandler != nil {
				mv.percentHandler()
			}
		case r == '(' || r == ')':
			if mv.parenHandler != nil {
				mv.parenHandler()
			}
		}
	})

	canvas.SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			if mv.equalsHandler != nil {
				mv.equalsHandler()
			}
		case fyne.KeyEscape:
			if mv.clearHandler != nil {
				mv.clearHandler()
			}
		case fyne.KeyBackspace:
			if mv.backspaceHandler != nil {
				mv.backspaceHandler()
			}
		case fyne.KeyDelete:
			if mv.clearEntryHandler != nil {
				mv.clearEntryHandler()
			}
		}
	})
}
