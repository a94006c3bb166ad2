package mongodb

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/logger"
)

var (
	UserCollection        string = "users"
	ExpenseCollection     string = "expenses"
	BudgetCollection      string = "budgets"
	GoalCollection        string = "goals"
	BankAccountCollection string = "bank_accounts"
	MongoDatabase         string = "wealthwise"
	MongoClient           *mongo.Client
)

func InitMongoDB() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}
	if db := os.Getenv("MONGO_DB"); db != "" {
		MongoDatabase = db
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(mongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("error connecting to MongoDB: %w", err)
	}

	MongoClient = client
	logger.Get().Info("connected to MongoDB", zap.String("database", MongoDatabase))
	return nil
}

func CloseMongoDB() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(context.TODO()); err != nil {
			logger.Get().Error("failed to disconnect from MongoDB", zap.Error(err))
			return
		}
		logger.Get().Info("disconnected from MongoDB")
	}
}

func collection(name string) *mongo.Collection {
	return MongoClient.Database(MongoDatabase).Collection(name)
}

// Store adapts the package-level collection functions to the interfaces
// the services package consumes.
type Store struct{}
