package engine

import (
	"math"
	"strconv"
)

// Magnitudes outside this window switch the display to scientific
// notation; within it, plain decimal form stays readable on a keypad
// display.
const (
	plainUpper = 1e15
	plainLower = 1e-9
)

// FormatResult renders an evaluation result for the display. Trailing
// zeros are trimmed so whole results read as integers.
func FormatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	mag := math.Abs(v)
	if mag >= plainUpper || mag < plainLower {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	// Round to the display's significant-digit budget first so float
	// artifacts like 0.30000000000000004 do not leak through.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	if err != nil {
		rounded = v
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
