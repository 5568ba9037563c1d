package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.46, RoundWithTwoDecimalPlace(10.456))
	assert.Equal(t, 10.45, RoundWithTwoDecimalPlace(10.454))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 62.5, RoundWithOneDecimalPlace(62.499999))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.333))
	assert.Equal(t, -3.2, RoundWithOneDecimalPlace(-3.24))
}

func TestSanitizeAmount(t *testing.T) {
	assert.Equal(t, 0.0, SanitizeAmount(math.NaN()))
	assert.Equal(t, 0.0, SanitizeAmount(math.Inf(1)))
	assert.Equal(t, 0.0, SanitizeAmount(math.Inf(-1)))
	assert.Equal(t, 42.5, SanitizeAmount(42.5))
	assert.Equal(t, -10.0, SanitizeAmount(-10.0))
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 0.5, SafeRatio(1.0, 2.0))
	assert.Equal(t, 0.0, SafeRatio(10.0, 0.0))
	assert.Equal(t, 0.0, SafeRatio(0.0, 0.0))
}
