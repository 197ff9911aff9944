// Package accumulator maintains the running calculator expression from
// discrete keypad events. Every operation is a synchronous state
// transition on the expression repositories; numeric evaluation is
// delegated to the engine service.
package accumulator

import (
	"strconv"
	"strings"

	"quickcalc/internal/engine"
	"quickcalc/internal/logger"
	"quickcalc/internal/models"
)

// errorMessage is the transient text shown on any evaluation failure.
const errorMessage = "Error"

// Accumulator applies keypad events to the expression state.
type Accumulator struct {
	state  *models.ExpressionState
	memory *models.MemoryRegister
	prefs  *models.Preferences
	engine *engine.Service
	log    logger.Logger

	openParens int
}

// New wires an accumulator over its repositories and the evaluation
// engine.
func New(
	state *models.ExpressionState,
	memory *models.MemoryRegister,
	prefs *models.Preferences,
	eng *engine.Service,
	log logger.Logger,
) *Accumulator {
	return &Accumulator{
		state:  state,
		memory: memory,
		prefs:  prefs,
		engine: eng,
		log:    log,
	}
}

// Snapshot returns the current expression state for rendering.
func (a *Accumulator) Snapshot() models.ExpressionSnapshot {
	return a.state.Snapshot()
}

// MemorySet reports whether the memory register holds a value.
func (a *Accumulator) MemorySet() bool {
	_, set := a.memory.Recall()
	return set
}

// AppendDigit extends the current numeral with a digit or decimal
// point. A second decimal point is a no-op, as is a digit past the
// per-numeral cap.
func (a *Accumulator) AppendDigit(token string) {
	a.state.ClearError()

	if token != "." && (len(token) != 1 || token[0] < '0' || token[0] > '9') {
		return
	}

	if a.state.Mode() == models.Pending {
		if token == "." {
			a.state.SetDisplay("0.")
		} else {
			a.state.SetDisplay(token)
		}
		return
	}

	display := a.state.Display()
	if token == "." {
		if strings.Contains(display, ".") {
			return
		}
		a.state.SetDisplay(display + ".")
		return
	}

	if digitCount(display) >= a.prefs.DigitCap() {
		a.log.Debug("accumulator", "digit cap reached", map[string]interface{}{
			"display": display,
			"cap":     a.prefs.DigitCap(),
		})
		return
	}
	if display == "0" {
		a.state.SetDisplay(token)
		return
	}
	a.state.SetDisplay(display + token)
}

// AppendOperator commits the current numeral to the equation buffer
// followed by the operator, and arms new-number mode. An operator
// pressed directly after another one replaces it.
func (a *Accumulator) AppendOperator(op string) {
	a.state.ClearError()

	switch op {
	case "+", "-", "*", "/":
	default:
		return
	}

	equation := a.state.Equation()
	tokens := strings.Fields(equation)
	last := lastToken(tokens)

	switch {
	case last == "=":
		// Continue from the previous result.
		a.state.SetEquation(a.state.Display() + " " + op)
	case isOperator(last) && a.state.Mode() == models.Pending:
		tokens[len(tokens)-1] = op
		a.state.SetEquation(strings.Join(tokens, " "))
	case last == ")":
		// The numeral was already committed by the closing paren.
		a.state.SetEquation(equation + " " + op)
	case equation == "":
		a.state.SetEquation(a.state.Display() + " " + op)
	default:
		a.state.SetEquation(equation + " " + a.state.Display() + " " + op)
	}
	a.state.SetPendingDisplay(a.state.Display())
}

// AppendParen inserts an opening or closing parenthesis, guided by the
// current balance: a closing paren commits the numeral in progress,
// anything else opens a new group.
func (a *Accumulator) AppendParen() {
	a.state.ClearError()

	equation := a.state.Equation()
	if strings.HasSuffix(equation, "=") {
		equation = ""
	}

	if a.openParens > 0 && a.state.Mode() == models.Editing {
		a.state.SetEquation(joinTokens(equation, a.state.Display(), ")"))
		a.openParens--
		a.state.SetPendingDisplay(a.state.Display())
		return
	}

	a.state.SetEquation(joinTokens(equation, "("))
	a.openParens++
	a.state.SetPendingDisplay(a.state.Display())
}

// Evaluate closes out the expression and delegates it to the engine.
// Any failure resets to the clean error state.
func (a *Accumulator) Evaluate() {
	a.state.ClearError()

	equation := a.state.Equation()
	if strings.HasSuffix(equation, "=") {
		equation = ""
	}

	var expression string
	if strings.HasSuffix(equation, ")") {
		expression = equation
	} else {
		expression = strings.TrimSpace(equation + " " + a.state.Display())
	}

	value, err := a.engine.Evaluate(expression)
	if err != nil {
		a.log.Info("accumulator", "evaluation failed", map[string]interface{}{
			"expression": expression,
			"reason":     err.Error(),
		})
		a.state.Reset()
		a.state.SetError(errorMessage)
		a.openParens = 0
		return
	}

	formatted := engine.FormatResult(value)
	a.state.SetEquation(expression + " =")
	a.state.SetPendingDisplay(formatted)
	a.openParens = 0

	a.log.Debug("accumulator", "expression evaluated", map[string]interface{}{
		"expression": expression,
		"result":     formatted,
	})
}

// Backspace removes the last character of the numeral being edited,
// collapsing to "0" when nothing remains. It never touches committed
// equation tokens.
func (a *Accumulator) Backspace() {
	a.state.ClearError()

	if a.state.Mode() == models.Pending {
		return
	}
	display := a.state.Display()
	if display == "0" {
		return
	}
	trimmed := display[:len(display)-1]
	if trimmed == "" || trimmed == "-" {
		trimmed = "0"
	}
	a.state.SetDisplay(trimmed)
}

// Percent divides the current value by 100, or computes a percentage
// of the pending equation's first operand when one exists, matching
// keypad convention ("200 + 10%" means 200 + 20).
func (a *Accumulator) Percent() {
	a.state.ClearError()

	current, ok := a.currentValue()
	if !ok {
		return
	}

	value := current / 100
	if base, found := a.firstOperand(); found {
		value = base * current / 100
	}
	a.state.SetDisplay(engine.FormatResult(value))
}

// ToggleSign negates the numeral currently shown. Zero stays zero.
func (a *Accumulator) ToggleSign() {
	a.state.ClearError()

	display := a.state.Display()
	if display == "0" {
		return
	}
	if strings.HasPrefix(display, "-") {
		a.state.SetDisplay(strings.TrimPrefix(display, "-"))
		return
	}
	a.state.SetDisplay("-" + display)
}

// Clear resets everything except the memory register.
func (a *Accumulator) Clear() {
	a.state.Reset()
	a.openParens = 0
}

// ClearEntry resets only the numeral in progress.
func (a *Accumulator) ClearEntry() {
	a.state.ClearError()
	a.state.SetPendingDisplay("0")
}

// MemoryAdd accumulates the current value into the memory register.
func (a *Accumulator) MemoryAdd() {
	a.state.ClearError()
	if v, ok := a.currentValue(); ok {
		a.memory.Add(v)
		a.state.SetPendingDisplay(a.state.Display())
	}
}

// MemorySubtract removes the current value from the memory register.
func (a *Accumulator) MemorySubtract() {
	a.state.ClearError()
	if v, ok := a.currentValue(); ok {
		a.memory.Subtract(v)
		a.state.SetPendingDisplay(a.state.Display())
	}
}

// MemoryRecall replaces the display with the stored value, if any.
func (a *Accumulator) MemoryRecall() {
	a.state.ClearError()
	if v, set := a.memory.Recall(); set {
		a.state.SetPendingDisplay(engine.FormatResult(v))
	}
}

// MemoryClear empties the memory register.
func (a *Accumulator) MemoryClear() {
	a.state.ClearError()
	a.memory.Clear()
}

// currentValue parses the display numeral. A trailing decimal point is
// tolerated ("2." reads as 2).
func (a *Accumulator) currentValue() (float64, bool) {
	display := strings.TrimSuffix(a.state.Display(), ".")
	v, err := strconv.ParseFloat(display, 64)
	if err != nil {
		a.log.Warning("accumulator", "display not numeric", map[string]interface{}{
			"display": a.state.Display(),
		})
		return 0, false
	}
	return v, true
}

// firstOperand returns the first numeral committed to a still-pending
// equation.
func (a *Accumulator) firstOperand() (float64, bool) {
	equation := a.state.Equation()
	if equation == "" || strings.HasSuffix(equation, "=") {
		return 0, false
	}
	for _, token := range strings.Fields(equation) {
		if v, err := strconv.ParseFloat(token, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func digitCount(numeral string) int {
	n := 0
	for _, r := range numeral {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func isOperator(token string) bool {
	switch token {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func lastToken(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

func joinTokens(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
