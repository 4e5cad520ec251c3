package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:30:15")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_MinutesUntil(t *testing.T) {
	start := TimeString("10:00")
	end := TimeString("11:30")

	minutes, err := start.MinutesUntil(end)
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	// Обратный порядок дает отрицательную длительность
	minutes, err = end.MinutesUntil(start)
	require.NoError(t, err)
	assert.Equal(t, -90, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:00")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "23:30", next.String())

	// Выход за границы суток
	_, err = ts.AddMinutes(120)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:45:00"))
	assert.Equal(t, "14:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, "09:05", ts.String())

	require.NoError(t, ts.Scan([]byte("18:00")))
	assert.Equal(t, "18:00", ts.String())
}
