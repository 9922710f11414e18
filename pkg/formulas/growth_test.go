package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundMonthlyRate_SinglePeriod(t *testing.T) {
	// 1000 -> 1210 over one month is exactly +21%
	rate := CompoundMonthlyRate(1000, 1210, 1)
	assert.InDelta(t, 21.0, rate, 1e-9)
}

func TestCompoundMonthlyRate_MultiPeriod(t *testing.T) {
	// 1000 -> 1210 over two months is +10% compounded
	rate := CompoundMonthlyRate(1000, 1210, 2)
	assert.InDelta(t, 10.0, rate, 1e-9)
}

func TestCompoundMonthlyRate_ZeroFirst(t *testing.T) {
	assert.Equal(t, 0.0, CompoundMonthlyRate(0, 500, 3))
	assert.Equal(t, 0.0, CompoundMonthlyRate(-100, 500, 3))
}

func TestCompoundMonthlyRate_ZeroMonthsDiff(t *testing.T) {
	assert.Equal(t, 0.0, CompoundMonthlyRate(1000, 2000, 0))
}

func TestCompoundMonthlyRate_NonFiniteClamped(t *testing.T) {
	// Negative base with fractional exponent produces NaN; clamp to 0
	rate := CompoundMonthlyRate(1000, -500, 2)
	assert.Equal(t, 0.0, rate)
}

func TestGrow_ZeroRateIsFlat(t *testing.T) {
	assert.Equal(t, 2000.0, Grow(2000, 0, 5))
}

func TestGrow_Compounds(t *testing.T) {
	assert.InDelta(t, 1210.0, Grow(1000, 10, 2), 1e-9)
}

func TestGrow_NeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, Grow(-100, 10, 1))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 1.5, Finite(1.5))
}

func TestMean_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
}

func TestTrailingAverage(t *testing.T) {
	avg := TrailingAverage([]float64{1, 2, 3, 4, 5, 6}, 3)
	if assert.NotNil(t, avg) {
		assert.InDelta(t, 5.0, *avg, 1e-9)
	}
}

func TestTrailingAverage_InsufficientData(t *testing.T) {
	assert.Nil(t, TrailingAverage([]float64{1, 2}, 3))
	assert.Nil(t, TrailingAverage(nil, 3))
}
