package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/kshitijtanwar/wealthwise/models"
)

// CreateUser persists a new account. Callers check for an existing
// email first.
func CreateUser(ctx context.Context, u *models.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	result, err := collection(UserCollection).InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		u.ID = id
	}
	return nil
}

// GetUserByEmail returns the user with the given email, or nil.
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := collection(UserCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID returns the user with the given id, or nil.
func GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	var user models.User
	err = collection(UserCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	return &user, nil
}

// UpdateSalaryBreakdown replaces the user's salary and breakdown in one
// update. The breakdown must already have passed finance.NewBreakdown.
func UpdateSalaryBreakdown(ctx context.Context, userID string, salary float64, breakdown models.Breakdown) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"salary":    salary,
		"breakdown": breakdown,
	}}
	_, err = collection(UserCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating salary breakdown: %w", err)
	}
	return nil
}
