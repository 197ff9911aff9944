package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExpressionState_Lifecycle verifies the cleared form, editing
// transitions, and reset.
func TestExpressionState_Lifecycle(t *testing.T) {
	es := NewExpressionState()

	snapshot := es.Snapshot()
	require.Equal(t, "0", snapshot.Display)
	require.Empty(t, snapshot.Equation)
	require.Equal(t, Pending, snapshot.Mode)

	es.SetDisplay("42")
	require.Equal(t, Editing, es.Mode())
	require.Equal(t, "42", es.Display())

	es.SetPendingDisplay("42")
	require.Equal(t, Pending, es.Mode())

	es.SetEquation("42 +")
	es.SetError("Error")
	es.Reset()

	snapshot = es.Snapshot()
	require.Equal(t, "0", snapshot.Display)
	require.Empty(t, snapshot.Equation)
	require.Empty(t, snapshot.Error)
	require.Equal(t, Pending, snapshot.Mode)
}

// TestExpressionState_ClearError reports whether a message was
// present.
func TestExpressionState_ClearError(t *testing.T) {
	es := NewExpressionState()

	require.False(t, es.ClearError())
	es.SetError("Error")
	require.True(t, es.ClearError())
	require.Empty(t, es.Snapshot().Error)
}

// TestMemoryRegister verifies accumulation and the set flag that
// distinguishes a stored zero from an empty register.
func TestMemoryRegister(t *testing.T) {
	mr := NewMemoryRegister()

	_, set := mr.Recall()
	require.False(t, set)

	require.Equal(t, 5.0, mr.Add(5))
	require.Equal(t, 2.0, mr.Subtract(3))

	v, set := mr.Recall()
	require.True(t, set)
	require.Equal(t, 2.0, v)

	// Subtracting back to zero still counts as stored.
	mr.Subtract(2)
	v, set = mr.Recall()
	require.True(t, set)
	require.Zero(t, v)

	mr.Clear()
	_, set = mr.Recall()
	require.False(t, set)
}

// TestPreferences verifies theme fallback and the digit cap guard.
func TestPreferences(t *testing.T) {
	p := NewPreferences()

	require.Equal(t, ThemeSystem, p.Theme())
	require.Equal(t, DefaultDigitCap, p.DigitCap())

	p.SetTheme(ThemeDark)
	require.Equal(t, ThemeDark, p.Theme())

	p.SetTheme(ThemeVariant("neon"))
	require.Equal(t, ThemeSystem, p.Theme())

	p.SetDigitCap(0)
	require.Equal(t, DefaultDigitCap, p.DigitCap())

	p.SetDigitCap(10)
	require.Equal(t, 10, p.DigitCap())
}
