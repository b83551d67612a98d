package lrcalc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	cases := []struct {
		r    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{3, "3"},
		{-1, "-1"},
		{0.5, "0.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e21, "1000000000000000000000"},
		{1e-7, "0.0000001"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatResult(c.r))
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "1", Render([]string{"1"}))
	assert.Equal(t, "1 + 2", Render([]string{"1", "+", "2"}))
}
