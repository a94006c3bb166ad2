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

// CreateGoal persists a new goal with its derived projection fields
// already computed.
func CreateGoal(ctx context.Context, g *models.Goal) error {
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	result, err := collection(GoalCollection).InsertOne(ctx, g)
	if err != nil {
		return fmt.Errorf("error creating goal: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		g.ID = id
	}
	return nil
}

// ListGoals returns all goals owned by the user.
func ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	cursor, err := collection(GoalCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []models.Goal
	for cursor.Next(ctx) {
		var goal models.Goal
		if err := cursor.Decode(&goal); err != nil {
			return nil, fmt.Errorf("error decoding goal: %w", err)
		}
		goals = append(goals, goal)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return goals, nil
}

// GetGoalByID returns the goal only if it is owned by the user; nil when
// it does not exist (or belongs to someone else).
func GetGoalByID(ctx context.Context, userID, goalID string) (*models.Goal, error) {
	id, err := bson.ObjectIDFromHex(goalID)
	if err != nil {
		return nil, nil
	}

	var goal models.Goal
	err = collection(GoalCollection).FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching goal: %w", err)
	}

	return &goal, nil
}

// UpdateGoal replaces a goal the user owns.
func UpdateGoal(ctx context.Context, g *models.Goal) error {
	g.UpdatedAt = time.Now()

	filter := bson.M{"_id": g.ID, "user_id": g.UserID}
	_, err := collection(GoalCollection).ReplaceOne(ctx, filter, g)
	if err != nil {
		return fmt.Errorf("error updating goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal the user owns. Returns false when no such
// goal exists for that user.
func DeleteGoal(ctx context.Context, userID, goalID string) (bool, error) {
	id, err := bson.ObjectIDFromHex(goalID)
	if err != nil {
		return false, nil
	}

	result, err := collection(GoalCollection).DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("error deleting goal: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// CountGoals returns the number of goals a user has.
func CountGoals(ctx context.Context, userID string) (int64, error) {
	count, err := collection(GoalCollection).CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("error counting goals: %w", err)
	}
	return count, nil
}

func (Store) CountGoals(ctx context.Context, userID string) (int64, error) {
	return CountGoals(ctx, userID)
}
