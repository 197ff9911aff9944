package accumulator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quickcalc/internal/engine"
	"quickcalc/internal/logger"
	"quickcalc/internal/models"
)

func newTestAccumulator() *Accumulator {
	state := models.NewExpressionState()
	memory := models.NewMemoryRegister()
	prefs := models.NewPreferences()
	eng := engine.NewService(logger.Nop{})
	return New(state, memory, prefs, eng, logger.Nop{})
}

func press(a *Accumulator, digits string) {
	for _, r := range digits {
		a.AppendDigit(string(r))
	}
}

// TestAppendDigit_BuildsNumeral verifies sequential digits extend the
// display and typing over the initial zero replaces it.
func TestAppendDigit_BuildsNumeral(t *testing.T) {
	a := newTestAccumulator()

	press(a, "123")

	require.Equal(t, "123", a.Snapshot().Display)
	require.Equal(t, models.Editing, a.Snapshot().Mode)
}

// TestAppendDigit_SecondDecimalPointIgnored verifies a second '.'
// within one numeral is a no-op.
func TestAppendDigit_SecondDecimalPointIgnored(t *testing.T) {
	a := newTestAccumulator()

	press(a, "1")
	a.AppendDigit(".")
	a.AppendDigit(".")
	press(a, "5")

	require.Equal(t, "1.5", a.Snapshot().Display)
}

// TestAppendDigit_LeadingDecimalPoint verifies '.' on a fresh numeral
// starts from "0.".
func TestAppendDigit_LeadingDecimalPoint(t *testing.T) {
	a := newTestAccumulator()

	a.AppendDigit(".")
	press(a, "5")

	require.Equal(t, "0.5", a.Snapshot().Display)
}

// TestAppendDigit_CapEnforced verifies digits past the per-numeral cap
// are dropped.
func TestAppendDigit_CapEnforced(t *testing.T) {
	a := newTestAccumulator()

	press(a, "123456789012345678901")

	require.Equal(t, "1234567890123456", a.Snapshot().Display)
	require.Len(t, a.Snapshot().Display, models.DefaultDigitCap)
}

// TestEvaluate_SimpleAddition verifies "2 + 3 =" produces 5 and the
// equation keeps a display-only history.
func TestEvaluate_SimpleAddition(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	press(a, "3")
	a.Evaluate()

	snapshot := a.Snapshot()
	require.Equal(t, "5", snapshot.Display)
	require.Equal(t, "2 + 3 =", snapshot.Equation)
	require.Empty(t, snapshot.Error)
}

// TestEvaluate_ContinuesFromResult verifies an operator after
// evaluation starts a new equation from the result.
func TestEvaluate_ContinuesFromResult(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	press(a, "3")
	a.Evaluate()

	a.AppendOperator("*")
	press(a, "4")
	a.Evaluate()

	require.Equal(t, "20", a.Snapshot().Display)
	require.Equal(t, "5 * 4 =", a.Snapshot().Equation)
}

// TestEvaluate_UnbalancedParens verifies "(2+3" yields the error
// state, not a crash.
func TestEvaluate_UnbalancedParens(t *testing.T) {
	a := newTestAccumulator()

	a.AppendParen()
	press(a, "2")
	a.AppendOperator("+")
	press(a, "3")
	a.Evaluate()

	snapshot := a.Snapshot()
	require.Equal(t, "0", snapshot.Display)
	require.Empty(t, snapshot.Equation)
	require.Equal(t, "Error", snapshot.Error)
}

// TestEvaluate_ErrorClearedOnNextInput verifies the transient error
// disappears once typing resumes.
func TestEvaluate_ErrorClearedOnNextInput(t *testing.T) {
	a := newTestAccumulator()

	a.AppendParen()
	press(a, "2")
	a.Evaluate()
	require.NotEmpty(t, a.Snapshot().Error)

	press(a, "7")
	require.Empty(t, a.Snapshot().Error)
	require.Equal(t, "7", a.Snapshot().Display)
}

// TestEvaluate_BalancedParens verifies a parenthesized group evaluates
// through the engine.
func TestEvaluate_BalancedParens(t *testing.T) {
	a := newTestAccumulator()

	a.AppendParen()
	press(a, "2")
	a.AppendOperator("+")
	press(a, "3")
	a.AppendParen()
	a.AppendOperator("*")
	press(a, "4")
	a.Evaluate()

	require.Equal(t, "20", a.Snapshot().Display)
}

// TestAppendOperator_RepeatReplaces verifies a second operator pressed
// back to back replaces the first instead of doubling it.
func TestAppendOperator_RepeatReplaces(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	a.AppendOperator("*")
	press(a, "3")
	a.Evaluate()

	require.Equal(t, "6", a.Snapshot().Display)
	require.Equal(t, "2 * 3 =", a.Snapshot().Equation)
}

// TestBackspace verifies the edge cases: "0" is a no-op, "12" becomes
// "1", and a lone digit collapses back to "0".
func TestBackspace(t *testing.T) {
	a := newTestAccumulator()

	a.Backspace()
	require.Equal(t, "0", a.Snapshot().Display)

	press(a, "12")
	a.Backspace()
	require.Equal(t, "1", a.Snapshot().Display)

	a.Backspace()
	require.Equal(t, "0", a.Snapshot().Display)
}

// TestBackspace_IgnoredWhilePending verifies backspace never eats into
// a committed result.
func TestBackspace_IgnoredWhilePending(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	a.Backspace()

	require.Equal(t, "2", a.Snapshot().Display)
	require.Equal(t, "2 +", a.Snapshot().Equation)
}

// TestPercent_PlainDivision verifies percent with no pending equation
// divides by 100.
func TestPercent_PlainDivision(t *testing.T) {
	a := newTestAccumulator()

	press(a, "50")
	a.Percent()

	require.Equal(t, "0.5", a.Snapshot().Display)
}

// TestPercent_RelativeToFirstOperand verifies "200 + 10%" rewrites the
// numeral as 10 percent of 200.
func TestPercent_RelativeToFirstOperand(t *testing.T) {
	a := newTestAccumulator()

	press(a, "200")
	a.AppendOperator("+")
	press(a, "10")
	a.Percent()

	require.Equal(t, "20", a.Snapshot().Display)

	a.Evaluate()
	require.Equal(t, "220", a.Snapshot().Display)
}

// TestToggleSign verifies negation round-trips and zero is untouched.
func TestToggleSign(t *testing.T) {
	a := newTestAccumulator()

	a.ToggleSign()
	require.Equal(t, "0", a.Snapshot().Display)

	press(a, "5")
	a.ToggleSign()
	require.Equal(t, "-5", a.Snapshot().Display)

	a.ToggleSign()
	require.Equal(t, "5", a.Snapshot().Display)
}

// TestClearEntry_PreservesEquation verifies CE resets the numeral but
// keeps the committed equation.
func TestClearEntry_PreservesEquation(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	press(a, "9")
	a.ClearEntry()

	require.Equal(t, "0", a.Snapshot().Display)
	require.Equal(t, "2 +", a.Snapshot().Equation)

	press(a, "3")
	a.Evaluate()
	require.Equal(t, "5", a.Snapshot().Display)
}

// TestClear_ResetsEverything verifies C restores the cleared form.
func TestClear_ResetsEverything(t *testing.T) {
	a := newTestAccumulator()

	press(a, "2")
	a.AppendOperator("+")
	press(a, "3")
	a.Clear()

	snapshot := a.Snapshot()
	require.Equal(t, "0", snapshot.Display)
	require.Empty(t, snapshot.Equation)
	require.Empty(t, snapshot.Error)
}

// TestMemory_AddThenRecall verifies the register accumulates and the
// recalled value replaces the display.
func TestMemory_AddThenRecall(t *testing.T) {
	a := newTestAccumulator()

	press(a, "5")
	a.MemoryAdd()
	require.True(t, a.MemorySet())

	a.ClearEntry()
	press(a, "3")
	a.MemoryAdd()

	a.ClearEntry()
	a.MemoryRecall()
	require.Equal(t, "8", a.Snapshot().Display)
}

// TestMemory_SubtractAndClear verifies M- and MC behavior.
func TestMemory_SubtractAndClear(t *testing.T) {
	a := newTestAccumulator()

	press(a, "10")
	a.MemoryAdd()
	press(a, "4")
	a.MemorySubtract()

	a.MemoryRecall()
	require.Equal(t, "6", a.Snapshot().Display)

	a.MemoryClear()
	require.False(t, a.MemorySet())

	// Recall with an empty register leaves the display alone.
	press(a, "9")
	a.MemoryRecall()
	require.Equal(t, "9", a.Snapshot().Display)
}
