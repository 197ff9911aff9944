package models

import "sync"

// EntryMode describes whether the display is being edited or a fresh
// numeral is pending after an operator or evaluation.
type EntryMode int

const (
	// Editing means typed digits extend the current numeral.
	Editing EntryMode = iota
	// Pending means the next digit starts a fresh numeral.
	Pending
)

// ExpressionSnapshot is an immutable copy of the expression state,
// handed to the view for rendering.
type ExpressionSnapshot struct {
	Display  string
	Equation string
	Error    string
	Mode     EntryMode
}

// ExpressionState holds the running calculator expression: the numeral
// currently being typed, the accumulated equation buffer, and a
// transient error message. Exactly one of {Editing, Pending} holds at
// a time.
type ExpressionState struct {
	mu       sync.RWMutex
	display  string
	equation string
	errMsg   string
	mode     EntryMode
}

// NewExpressionState creates the state in its cleared form.
func NewExpressionState() *ExpressionState {
	return &ExpressionState{
		display: "0",
		mode:    Pending,
	}
}

// Snapshot returns a copy of the current state.
func (es *ExpressionState) Snapshot() ExpressionSnapshot {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return ExpressionSnapshot{
		Display:  es.display,
		Equation: es.equation,
		Error:    es.errMsg,
		Mode:     es.mode,
	}
}

// Display returns the numeral currently shown.
func (es *ExpressionState) Display() string {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.display
}

// Equation returns the accumulated equation buffer.
func (es *ExpressionState) Equation() string {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.equation
}

// Mode returns the current entry mode.
func (es *ExpressionState) Mode() EntryMode {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.mode
}

// SetDisplay replaces the current numeral and switches to editing mode.
func (es *ExpressionState) SetDisplay(display string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.display = display
	es.mode = Editing
}

// SetPendingDisplay replaces the numeral but leaves a fresh numeral
// pending, as after an operator or evaluation.
func (es *ExpressionState) SetPendingDisplay(display string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.display = display
	es.mode = Pending
}

// SetEquation replaces the equation buffer.
func (es *ExpressionState) SetEquation(equation string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.equation = equation
}

// SetError records a transient error message.
func (es *ExpressionState) SetError(msg string) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.errMsg = msg
}

// ClearError drops the transient error, if any. Returns true when a
// message was present.
func (es *ExpressionState) ClearError() bool {
	es.mu.Lock()
	defer es.mu.Unlock()
	had := es.errMsg != ""
	es.errMsg = ""
	return had
}

// Reset restores the cleared form: display "0", empty equation, no
// error, fresh numeral pending.
func (es *ExpressionState) Reset() {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.display = "0"
	es.equation = ""
	es.errMsg = ""
	es.mode = Pending
}
