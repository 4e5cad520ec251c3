package create_booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

func TestCalculatePrice(t *testing.T) {
	rate := decimal.NewFromInt(1500)

	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		expected string
	}{
		{"full hour", "10:00", "11:00", "1500.00"},
		{"half hour", "10:00", "10:30", "750.00"},
		{"ninety minutes", "10:00", "11:30", "2250.00"},
		{"four hours", "08:00", "12:00", "6000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := CalculatePrice(rate, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price.StringFixed(2))
		})
	}
}

func TestCalculatePrice_RoundsToTwoDecimals(t *testing.T) {
	// 1000 / 3 часа дробится бесконечно, результат обрезается до валютной точности
	rate, err := decimal.NewFromString("999.99")
	require.NoError(t, err)

	price, err := CalculatePrice(rate, "10:00", "10:20")
	require.NoError(t, err)
	assert.Equal(t, "333.33", price.StringFixed(2))
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	rate, err := decimal.NewFromString("1234.56")
	require.NoError(t, err)

	first, err := CalculatePrice(rate, "09:00", "10:30")
	require.NoError(t, err)

	second, err := CalculatePrice(rate, "09:00", "10:30")
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
}

func TestCalculatePrice_Linearity(t *testing.T) {
	rate := decimal.NewFromInt(800)

	oneHour, err := CalculatePrice(rate, "10:00", "11:00")
	require.NoError(t, err)

	twoHours, err := CalculatePrice(rate, "10:00", "12:00")
	require.NoError(t, err)

	assert.True(t, twoHours.Equal(oneHour.Mul(decimal.NewFromInt(2))))
}
