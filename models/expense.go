package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExpenseSource records how an expense entered the ledger.
type ExpenseSource string

const (
	SourceManual ExpenseSource = "manual"
	SourceBank   ExpenseSource = "bank"
	SourceFile   ExpenseSource = "file"
)

// Expense is a single ledger entry. Expenses are immutable once
// recorded; there is no update path and they are never auto-deleted.
type Expense struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            string        `bson:"user_id" json:"user_id"`
	Amount            float64       `bson:"amount" json:"amount"`
	Date              time.Time     `bson:"date" json:"date"`
	Category          string        `bson:"category" json:"category"`
	Description       string        `bson:"description,omitempty" json:"description,omitempty"`
	Merchant          string        `bson:"merchant,omitempty" json:"merchant,omitempty"`
	Source            ExpenseSource `bson:"source" json:"source"`
	BankTransactionID string        `bson:"bank_transaction_id,omitempty" json:"bank_transaction_id,omitempty"`
	ImportedAt        *time.Time    `bson:"imported_at,omitempty" json:"imported_at,omitempty"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
}
