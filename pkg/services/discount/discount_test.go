package discount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Scenarios(t *testing.T) {
	scenarios := []struct {
		name       string
		amount     float64
		percentage float64
		want       float64
	}{
		{"basic discount", 100.0, 10.0, 90.0},
		{"zero percentage keeps the amount", 100.0, 0.0, 100.0},
		{"full discount zeroes the amount", 100.0, 100.0, 0.0},
		{"decimal percentage", 100.0, 12.5, 87.5},
		{"zero amount stays zero", 0.0, 35.0, 0.0},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			got, err := Compute(s.amount, s.percentage)
			require.NoError(t, err)
			assert.Equal(t, s.want, got)
		})
	}
}

func TestCompute_DecimalAmount(t *testing.T) {
	got, err := Compute(99.99, 15.0)
	require.NoError(t, err)
	assert.InDelta(t, 84.99, got, 0.01)
}

func TestCompute_ResultStaysWithinBounds(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 99.99, 100, 12345.67}
	for _, amount := range amounts {
		for pct := 0.0; pct <= 100.0; pct += 2.5 {
			got, err := Compute(amount, pct)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0, "amount=%v pct=%v", amount, pct)
			assert.LessOrEqual(t, got, amount, "amount=%v pct=%v", amount, pct)
		}
	}
}

func TestCompute_NegativeAmount(t *testing.T) {
	_, err := Compute(-100.0, 10.0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidAmount, verr.Kind)
	assert.Equal(t, "amount cannot be negative", verr.Message)
}

func TestCompute_NegativePercentage(t *testing.T) {
	_, err := Compute(100.0, -10.0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidPercentage, verr.Kind)
	assert.Equal(t, "percentage cannot be negative", verr.Message)
}

func TestCompute_PercentageAboveHundred(t *testing.T) {
	_, err := Compute(100.0, 150.0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidPercentage, verr.Kind)
	assert.Equal(t, "percentage cannot exceed 100%", verr.Message)
}

// The amount check runs first, so it wins when both inputs are invalid.
func TestCompute_DoublyInvalidReportsAmountFirst(t *testing.T) {
	_, err := Compute(-1.0, 250.0)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidAmount, verr.Kind)
}
