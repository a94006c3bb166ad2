package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kshitijtanwar/wealthwise/models"
)

// GetBankAccountByNumber returns the user's linked bank account with
// its embedded transaction feed, or nil when no such account is linked.
func GetBankAccountByNumber(ctx context.Context, userID, accountNumber string) (*models.BankAccount, error) {
	filter := bson.M{"user_id": userID, "account_number": accountNumber}

	var account models.BankAccount
	err := collection(BankAccountCollection).FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching bank account: %w", err)
	}

	return &account, nil
}

func (Store) GetBankAccountByNumber(ctx context.Context, userID, accountNumber string) (*models.BankAccount, error) {
	return GetBankAccountByNumber(ctx, userID, accountNumber)
}
