package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Allocation is the monthly contribution split across the three
// instrument buckets.
type Allocation struct {
	Sip  float64 `bson:"sip" json:"sip"`
	Fd   float64 `bson:"fd" json:"fd"`
	Gold float64 `bson:"gold" json:"gold"`
}

// Total returns the combined monthly contribution.
func (a Allocation) Total() float64 {
	return a.Sip + a.Fd + a.Gold
}

// ExpectedReturns holds the one-year simple return per instrument.
type ExpectedReturns struct {
	Sip   float64 `bson:"sip" json:"sip"`
	Fd    float64 `bson:"fd" json:"fd"`
	Gold  float64 `bson:"gold" json:"gold"`
	Total float64 `bson:"total" json:"total"`
}

// Goal is a savings target funded by monthly contributions. The derived
// fields (ExpectedReturns through Shortfall) are recomputed whenever the
// allocation changes.
type Goal struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string        `bson:"user_id" json:"user_id"`
	Name          string        `bson:"name" json:"name"`
	TargetAmount  float64       `bson:"target_amount" json:"target_amount"`
	DurationYears int           `bson:"duration_years" json:"duration_years"`
	TotalSavings  float64       `bson:"total_savings" json:"total_savings"`
	Allocation    Allocation    `bson:"allocation" json:"allocation"`

	ExpectedReturns ExpectedReturns `bson:"expected_returns" json:"expected_returns"`
	ProjectedValue  float64         `bson:"projected_value" json:"projected_value"`
	TotalInvested   float64         `bson:"total_invested" json:"total_invested"`
	FinalValue      float64         `bson:"final_value" json:"final_value"`
	AchievementPct  float64         `bson:"achievement_pct" json:"achievement_pct"`
	Shortfall       float64         `bson:"shortfall" json:"shortfall"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
