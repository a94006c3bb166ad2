package finance

import (
	"math"

	"github.com/kshitijtanwar/wealthwise/models"
)

// Fixed annual return rates per instrument, in percent.
const (
	RateSip  = 8.0
	RateFd   = 5.0
	RateGold = 6.0
)

// Projection is everything derived from a goal's allocation. The
// one-year simple figures (ExpectedReturns, ProjectedValue) give quick
// feedback on an allocation; the full-duration compound figures
// (TotalInvested through Shortfall) track goal achievement.
type Projection struct {
	ExpectedReturns models.ExpectedReturns
	ProjectedValue  float64
	TotalInvested   float64
	FinalValue      float64
	AchievementPct  float64
	Shortfall       float64
}

// CheckAllocation verifies a goal's monthly allocation fits within the
// user's declared savings. Must pass before a goal create or update is
// accepted.
func CheckAllocation(alloc models.Allocation, savings float64) error {
	if total := alloc.Total(); total > savings {
		return &AllocationExceedsSavingsError{Excess: total - savings}
	}
	return nil
}

// ProjectGoal computes the derived fields for a goal from its monthly
// allocation, duration and target.
//
// One-year simple returns treat each monthly amount as a lump sum:
// amount * rate / 100, no compounding. The full-duration figures treat
// allocation * 12 as the annual contribution base per instrument and
// compound it over the goal's duration.
//
// AchievementPct is left uncapped; callers showing it as a progress
// indicator clamp to 100 at display time, and Shortfall always uses the
// raw value.
func ProjectGoal(alloc models.Allocation, durationYears int, targetAmount float64) Projection {
	returns := models.ExpectedReturns{
		Sip:  alloc.Sip * RateSip / 100,
		Fd:   alloc.Fd * RateFd / 100,
		Gold: alloc.Gold * RateGold / 100,
	}
	returns.Total = returns.Sip + returns.Fd + returns.Gold

	years := float64(durationYears)
	growth := compoundGrowth(alloc.Sip*12, RateSip, years) +
		compoundGrowth(alloc.Fd*12, RateFd, years) +
		compoundGrowth(alloc.Gold*12, RateGold, years)

	totalInvested := alloc.Total() * 12 * years
	finalValue := totalInvested + growth

	p := Projection{
		ExpectedReturns: returns,
		ProjectedValue:  alloc.Total() + returns.Total,
		TotalInvested:   totalInvested,
		FinalValue:      finalValue,
		Shortfall:       math.Max(0, targetAmount-finalValue),
	}
	if targetAmount > 0 {
		p.AchievementPct = finalValue / targetAmount * 100
	}
	return p
}

func compoundGrowth(principal, rate, years float64) float64 {
	return principal*math.Pow(1+rate/100, years) - principal
}
