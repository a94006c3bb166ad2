package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BankTransaction is a raw transaction as held on a linked bank
// account, before it is imported into the expense ledger.
type BankTransaction struct {
	BankTransactionID string    `bson:"bank_transaction_id" json:"bank_transaction_id"`
	Amount            float64   `bson:"amount" json:"amount"`
	Date              time.Time `bson:"date" json:"date"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	Category          string    `bson:"category,omitempty" json:"category,omitempty"`
	Merchant          string    `bson:"merchant,omitempty" json:"merchant,omitempty"`
}

// BankAccount is a linked account with its transaction feed embedded.
type BankAccount struct {
	ID            bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID        string            `bson:"user_id" json:"user_id"`
	AccountNumber string            `bson:"account_number" json:"account_number"`
	Transactions  []BankTransaction `bson:"transactions" json:"transactions"`
}
