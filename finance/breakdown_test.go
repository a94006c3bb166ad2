package finance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBreakdown_SumEqualToSalary(t *testing.T) {
	t.Parallel()

	b, err := NewBreakdown(50_000, 20_000, 25_000, 5_000)
	require.NoError(t, err)
	assert.Equal(t, 20_000.0, b.Savings)
	assert.Equal(t, 25_000.0, b.Expenses)
	assert.Equal(t, 5_000.0, b.Misc)
	assert.Equal(t, 50_000.0, b.Total())
}

func TestNewBreakdown_ExceedsSalaryByOne(t *testing.T) {
	t.Parallel()

	_, err := NewBreakdown(50_000, 20_000, 25_000, 5_001)
	require.Error(t, err)

	var exceeds *BreakdownExceedsSalaryError
	require.True(t, errors.As(err, &exceeds))
	assert.Equal(t, 1.0, exceeds.Excess)
}

func TestNewBreakdown_RejectsNegativeInputs(t *testing.T) {
	t.Parallel()

	for _, args := range [][4]float64{
		{-1, 0, 0, 0},
		{1000, -1, 0, 0},
		{1000, 0, -1, 0},
		{1000, 0, 0, -1},
	} {
		_, err := NewBreakdown(args[0], args[1], args[2], args[3])
		assert.ErrorIs(t, err, ErrNegativeAmount)
	}
}

func TestNewBreakdown_ZeroSalaryZeroParts(t *testing.T) {
	t.Parallel()

	b, err := NewBreakdown(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, b.Total())
}
