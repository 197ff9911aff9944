package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"quickcalc/internal/models"
	"quickcalc/internal/views/components"
)

// MainView composes the calculator window: display, memory row,
// keypad, status bar. Event handlers are connected by the controller.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	display       *components.Display
	memoryRow     *components.MemoryRow
	keypad        *components.Keypad
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	digitHandler        func(string)
	operatorHandler     func(string)
	equalsHandler       func()
	clearHandler        func()
	clearEntryHandler   func()
	backspaceHandler    func()
	percentHandler      func()
	signHandler         func()
	parenHandler        func()
	memoryClearHandler  func()
	memoryRecallHandler func()
	memoryAddHandler    func()
	memorySubHandler    func()
	themeChangeHandler  func(models.ThemeVariant)
}

// NewMainView creates the main view and installs its layout into the
// window.
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.bindKeyboard()
	view.buildMenu()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.display = components.NewDisplay()
	mv.memoryRow = components.NewMemoryRow()
	mv.keypad = components.NewKeypad()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.display.GetContainer(),
		mv.memoryRow.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,                     // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.keypad.GetContainer(),    // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects component events to the controller
// hooks.
func (mv *MainView) setupEventHandlers() {
	mv.keypad.SetDigitHandler(func(token string) {
		if mv.digitHandler != nil {
			mv.digitHandler(token)
		}
	})
	mv.keypad.SetOperatorHandler(func(op string) {
		if mv.operatorHandler != nil {
			mv.operatorHandler(op)
		}
	})
	mv.keypad.SetEqualsHandler(func() {
		if mv.equalsHandler != nil {
			mv.equalsHandler()
		}
	})
	mv.keypad.SetClearHandler(func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})
	mv.keypad.SetClearEntryHandler(func() {
		if mv.clearEntryHandler != nil {
			mv.clearEntryHandler()
		}
	})
	mv.keypad.SetBackspaceHandler(func() {
		if mv.backspaceHandler != nil {
			mv.backspaceHandler()
		}
	})
	mv.keypad.SetPercentHandler(func() {
		if mv.percentHandler != nil {
			mv.percentHandler()
		}
	})
	mv.keypad.SetSignHandler(func() {
		if mv.signHandler != nil {
			mv.signHandler()
		}
	})
	mv.keypad.SetParenHandler(func() {
		if mv.parenHandler != nil {
			mv.parenHandler()
		}
	})

	mv.memoryRow.SetClearHandler(func() {
		if mv.memoryClearHandler != nil {
			mv.memoryClearHandler()
		}
	})
	mv.memoryRow.SetRecallHandler(func() {
		if mv.memoryRecallHandler != nil {
			mv.memoryRecallHandler()
		}
	})
	mv.memoryRow.SetAddHandler(func() {
		if mv.memoryAddHandler != nil {
			mv.memoryAddHandler()
		}
	})
	mv.memoryRow.SetSubtractHandler(func() {
		if mv.memorySubHandler != nil {
			mv.memorySubHandler()
		}
	})
}

func (mv *MainView) buildMenu() {
	themeItem := func(label string, variant models.ThemeVariant) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			if mv.themeChangeHandler != nil {
				mv.themeChangeHandler(variant)
			}
		})
	}

	viewMenu := fyne.NewMenu("View",
		themeItem("System Theme", models.ThemeSystem),
		themeItem("Light Theme", models.ThemeLight),
		themeItem("Dark Theme", models.ThemeDark),
	)
	mv.window.SetMainMenu(fyne.NewMainMenu(viewMenu))
}

// Event handler setters - called by controller

func (mv *MainView) SetDigitHandler(handler func(string)) {
	mv.digitHandler = handler
}

func (mv *MainView) SetOperatorHandler(handler func(string)) {
	mv.operatorHandler = handler
}

func (mv *MainView) SetEqualsHandler(handler func()) {
	mv.equalsHandler = handler
}

func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

func (mv *MainView) SetClearEntryHandler(handler func()) {
	mv.clearEntryHandler = handler
}

func (mv *MainView) SetBackspaceHandler(handler func()) {
	mv.backspaceHandler = handler
}

func (mv *MainView) SetPercentHandler(handler func()) {
	mv.percentHandler = handler
}

func (mv *MainView) SetSignHandler(handler func()) {
	mv.signHandler = handler
}

func (mv *MainView) SetParenHandler(handler func()) {
	mv.parenHandler = handler
}

func (mv *MainView) SetMemoryClearHandler(handler func()) {
	mv.memoryClearHandler = handler
}

func (mv *MainView) SetMemoryRecallHandler(handler func()) {
	mv.memoryRecallHandler = handler
}

func (mv *MainView) SetMemoryAddHandler(handler func()) {
	mv.memoryAddHandler = handler
}

func (mv *MainView) SetMemorySubtractHandler(handler func()) {
	mv.memorySubHandler = handler
}

func (mv *MainView) SetThemeChangeHandler(handler func(models.ThemeVariant)) {
	mv.themeChangeHandler = handler
}

// Render pushes an expression snapshot into the display.
func (mv *MainView) Render(snapshot models.ExpressionSnapshot, memorySet bool) {
	mv.display.Update(snapshot, memorySet)
}

// UpdateStatus updates the status bar message.
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// UpdateMemoryInfo updates the status bar memory readout.
func (mv *MainView) UpdateMemoryInfo(value string) {
	mv.statusBar.SetMemoryInfo(value)
}
