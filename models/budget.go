package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BudgetPeriod is the nominal window a budget covers.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// DefaultNotifyOn is the fraction of a budget at which a warning alert
// fires when the user does not set one explicitly.
const DefaultNotifyOn = 0.9

// Budget is a per-category spending ceiling. At most one budget exists
// per (user, category); setting a budget for an existing category
// replaces it.
type Budget struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Category  string        `bson:"category" json:"category"`
	Amount    float64       `bson:"amount" json:"amount"`
	Period    BudgetPeriod  `bson:"period" json:"period"`
	StartDate *time.Time    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   *time.Time    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	NotifyOn  float64       `bson:"notify_on" json:"notify_on"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
