package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFormatResult verifies whole results read as integers, float
// artifacts are rounded away, and extreme magnitudes switch to
// scientific notation.
func TestFormatResult(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{5, "5"},
		{-2.5, "-2.5"},
		{0.5, "0.5"},
		{0.1 + 0.2, "0.3"},
		{1e16, "1e+16"},
		{2.5e-10, "2.5e-10"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatResult(tc.value))
	}
}
