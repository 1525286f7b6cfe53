package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"contracthub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the booking collection indexes matching the two list
// orderings: client lists by scheduledDate, contractor lists by createdAt.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.Collection("bookings")
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "scheduledDate", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "contractorId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
