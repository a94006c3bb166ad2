package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijtanwar/wealthwise/models"
)

func TestProjectGoal_OneYearSimpleReturns(t *testing.T) {
	t.Parallel()

	p := ProjectGoal(models.Allocation{Sip: 1000, Fd: 1000, Gold: 1000}, 1, 100_000)

	assert.Equal(t, 80.0, p.ExpectedReturns.Sip)
	assert.Equal(t, 50.0, p.ExpectedReturns.Fd)
	assert.Equal(t, 60.0, p.ExpectedReturns.Gold)
	assert.Equal(t, 190.0, p.ExpectedReturns.Total)
	assert.Equal(t, 3190.0, p.ProjectedValue)
}

func TestProjectGoal_CompoundDuration(t *testing.T) {
	t.Parallel()

	alloc := models.Allocation{Sip: 1000, Fd: 1000, Gold: 1000}
	years := 5
	p := ProjectGoal(alloc, years, 300_000)

	assert.Equal(t, 3000.0*12*5, p.TotalInvested)

	wantGrowth := 12_000*math.Pow(1.08, 5) - 12_000 +
		12_000*math.Pow(1.05, 5) - 12_000 +
		12_000*math.Pow(1.06, 5) - 12_000
	assert.InDelta(t, p.TotalInvested+wantGrowth, p.FinalValue, 1e-9)

	assert.InDelta(t, p.FinalValue/300_000*100, p.AchievementPct, 1e-9)
	assert.InDelta(t, 300_000-p.FinalValue, p.Shortfall, 1e-9)
}

func TestProjectGoal_NoShortfallWhenTargetMet(t *testing.T) {
	t.Parallel()

	p := ProjectGoal(models.Allocation{Sip: 5000}, 10, 1000)

	assert.Zero(t, p.Shortfall)
	// uncapped: the raw percentage is retained past 100
	assert.Greater(t, p.AchievementPct, 100.0)
}

func TestProjectGoal_ZeroTarget(t *testing.T) {
	t.Parallel()

	p := ProjectGoal(models.Allocation{Sip: 100}, 1, 0)
	assert.Zero(t, p.AchievementPct)
	assert.Zero(t, p.Shortfall)
}

func TestCheckAllocation(t *testing.T) {
	t.Parallel()

	ok := models.Allocation{Sip: 4000, Fd: 3000, Gold: 3000}
	require.NoError(t, CheckAllocation(ok, 10_000))

	over := models.Allocation{Sip: 4000, Fd: 3000, Gold: 3001}
	err := CheckAllocation(over, 10_000)
	require.Error(t, err)

	var exceeds *AllocationExceedsSavingsError
	require.True(t, errors.As(err, &exceeds))
	assert.Equal(t, 1.0, exceeds.Excess)
}
