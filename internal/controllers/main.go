package controllers

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"quickcalc/internal/accumulator"
	"quickcalc/internal/engine"
	"quickcalc/internal/logger"
	"quickcalc/internal/models"
	"quickcalc/internal/theme"
	"quickcalc/internal/views"
)

// MainController binds view events to accumulator operations and
// pushes the resulting state back into the view. All calculator work
// happens synchronously on the event that triggered it.
type MainController struct {
	acc     *accumulator.Accumulator
	memory  *models.MemoryRegister
	prefs   *models.Preferences
	fyneApp fyne.App

	mainView *views.MainView
	log      logger.Logger

	// One id per window session, attached to every log line.
	sessionID string
}

// NewMainController creates the controller.
func NewMainController(
	acc *accumulator.Accumulator,
	memory *models.MemoryRegister,
	prefs *models.Preferences,
	fyneApp fyne.App,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		acc:       acc,
		memory:    memory,
		prefs:     prefs,
		fyneApp:   fyneApp,
		log:       log,
		sessionID: uuid.NewString(),
	}

	log.Info("controller", "session started", controller.fields(nil))
	return controller
}

// SetMainView associates the main view with this controller and wires
// its events.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
	mc.refresh("Ready")
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetDigitHandler(mc.PressDigit)
	mc.mainView.SetOperatorHandler(mc.PressOperator)
	mc.mainView.SetEqualsHandler(mc.PressEquals)
	mc.mainView.SetClearHandler(mc.PressClear)
	mc.mainView.SetClearEntryHandler(mc.PressClearEntry)
	mc.mainView.SetBackspaceHandler(mc.PressBackspace)
	mc.mainView.SetPercentHandler(mc.PressPercent)
	mc.mainView.SetSignHandler(mc.PressSign)
	mc.mainView.SetParenHandler(mc.PressParen)
	mc.mainView.SetMemoryClearHandler(mc.MemoryClear)
	mc.mainView.SetMemoryRecallHandler(mc.MemoryRecall)
	mc.mainView.SetMemoryAddHandler(mc.MemoryAdd)
	mc.mainView.SetMemorySubtractHandler(mc.MemorySubtract)
	mc.mainView.SetThemeChangeHandler(mc.ChangeTheme)
}

// PressDigit appends a digit or decimal point.
func (mc *MainController) PressDigit(token string) {
	mc.acc.AppendDigit(token)
	mc.refresh("")
}

// PressOperator appends an arithmetic operator.
func (mc *MainController) PressOperator(op string) {
	mc.acc.AppendOperator(op)
	mc.refresh("")
}

// PressEquals evaluates the accumulated expression.
func (mc *MainController) PressEquals() {
	mc.acc.Evaluate()

	snapshot := mc.acc.Snapshot()
	if snapshot.Error != "" {
		mc.refresh("Evaluation failed")
		return
	}
	mc.refresh("Evaluated")
}

// PressClear resets the expression.
func (mc *MainController) PressClear() {
	mc.acc.Clear()
	mc.refresh("Cleared")
}

// PressClearEntry resets only the numeral in progress.
func (mc *MainController) PressClearEntry() {
	mc.acc.ClearEntry()
	mc.refresh("")
}

// PressBackspace removes the last digit.
func (mc *MainController) PressBackspace() {
	mc.acc.Backspace()
	mc.refresh("")
}

// PressPercent applies the percent key.
func (mc *MainController) PressPercent() {
	mc.acc.Percent()
	mc.refresh("")
}

// PressSign toggles the numeral sign.
func (mc *MainController) PressSign() {
	mc.acc.ToggleSign()
	mc.refresh("")
}

// PressParen inserts a parenthesis.
func (mc *MainController) PressParen() {
	mc.acc.AppendParen()
	mc.refresh("")
}

// MemoryClear empties the memory register.
func (mc *MainController) MemoryClear() {
	mc.acc.MemoryClear()
	mc.refresh("Memory cleared")
}

// MemoryRecall recalls the memory register into the display.
func (mc *MainController) MemoryRecall() {
	mc.acc.MemoryRecall()
	mc.refresh("")
}

// MemoryAdd adds the current value to the memory register.
func (mc *MainController) MemoryAdd() {
	mc.acc.MemoryAdd()
	mc.refresh("Memory updated")
}

// MemorySubtract subtracts the current value from the memory register.
func (mc *MainController) MemorySubtract() {
	mc.acc.MemorySubtract()
	mc.refresh("Memory updated")
}

// ChangeTheme applies and persists a theme variant.
func (mc *MainController) ChangeTheme(variant models.ThemeVariant) {
	mc.prefs.SetTheme(variant)

	fyne.Do(func() {
		theme.Apply(mc.fyneApp, mc.prefs.Theme())
	})
	theme.Store(mc.fyneApp, mc.prefs.Theme())

	mc.log.Info("controller", "theme changed", mc.fields(map[string]interface{}{
		"variant": string(variant),
	}))
}

// Shutdown logs session end. Registered with the shutdown manager.
func (mc *MainController) Shutdown() {
	mc.log.Info("controller", "session ended", mc.fields(nil))
}

// refresh pushes the current state into the view. An empty status
// leaves the status line untouched.
func (mc *MainController) refresh(status string) {
	if mc.mainView == nil {
		return
	}

	snapshot := mc.acc.Snapshot()
	memValue, memSet := mc.memory.Recall()

	mc.mainView.Render(snapshot, memSet)
	if memSet {
		mc.mainView.UpdateMemoryInfo(engine.FormatResult(memValue))
	} else {
		mc.mainView.UpdateMemoryInfo("")
	}
	if status != "" {
		mc.mainView.UpdateStatus(status)
	}

	mc.log.Debug("controller", "state rendered", mc.fields(map[string]interface{}{
		"display":  snapshot.Display,
		"equation": snapshot.Equation,
	}))
}

func (mc *MainController) fields(extra map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{"session": mc.sessionID}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
