package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Breakdown is a user's declared split of salary into savings, expenses
// and misc. It is only ever constructed through finance.NewBreakdown,
// which enforces savings+expenses+misc <= salary; treat instances as
// immutable and replace them wholesale on settings updates.
type Breakdown struct {
	Savings  float64 `bson:"savings" json:"savings"`
	Expenses float64 `bson:"expenses" json:"expenses"`
	Misc     float64 `bson:"misc" json:"misc"`
}

// Total returns the sum of all breakdown parts.
func (b Breakdown) Total() float64 {
	return b.Savings + b.Expenses + b.Misc
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Salary       float64       `bson:"salary" json:"salary"`
	Breakdown    *Breakdown    `bson:"breakdown,omitempty" json:"breakdown,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}

// SavingsAvailable returns the declared monthly savings, or zero when
// no breakdown has been set yet.
func (u *User) SavingsAvailable() float64 {
	if u.Breakdown == nil {
		return 0
	}
	return u.Breakdown.Savings
}
