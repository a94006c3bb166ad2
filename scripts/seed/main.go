// Seeds a demo bank account with a transaction feed for a user, so the
// import flow has something to pull from in development.
//
//	go run ./scripts/seed -user <user-id> -account DEMO-001
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshitijtanwar/wealthwise/models"
	"github.com/kshitijtanwar/wealthwise/mongodb"
)

func main() {
	userID := flag.String("user", "", "user id to own the seeded account")
	accountNumber := flag.String("account", "DEMO-001", "account number for the seeded account")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
	if err := mongodb.InitMongoDB(); err != nil {
		log.Fatal("failed to initialize MongoDB: ", err)
	}
	defer mongodb.CloseMongoDB()

	now := time.Now()
	account := models.BankAccount{
		UserID:        *userID,
		AccountNumber: *accountNumber,
		Transactions: []models.BankTransaction{
			{BankTransactionID: uuid.NewString(), Amount: 1250, Date: now.AddDate(0, 0, -21), Description: "Monthly groceries", Category: "groceries", Merchant: "BigBasket"},
			{BankTransactionID: uuid.NewString(), Amount: 499, Date: now.AddDate(0, 0, -14), Description: "Streaming subscription", Category: "entertainment", Merchant: "Netflix"},
			{BankTransactionID: uuid.NewString(), Amount: 3200, Date: now.AddDate(0, 0, -7), Description: "Electricity bill", Category: "utilities", Merchant: "State Power"},
			{BankTransactionID: uuid.NewString(), Amount: 850, Date: now.AddDate(0, 0, -3), Description: "Dining out", Category: "food", Merchant: "Cafe Coffee Day"},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := mongodb.MongoClient.Database(mongodb.MongoDatabase).
		Collection(mongodb.BankAccountCollection).
		InsertOne(ctx, account)
	if err != nil {
		log.Fatal("failed to seed bank account: ", err)
	}

	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		log.Printf("seeded bank account %s (%s) with %d transactions", *accountNumber, id.Hex(), len(account.Transactions))
	}
}
