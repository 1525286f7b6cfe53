package savedRepo

import (
	"context"
	"fmt"
	"time"

	"contracthub/database"
	"contracthub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSavedContractorRepo implements SavedContractorRepository using MongoDB.
type MongoSavedContractorRepo struct {
	coll *mongo.Collection
}

// NewMongoSavedContractorRepo creates a new instance of SavedContractorRepository using MongoDB.
func NewMongoSavedContractorRepo() SavedContractorRepository {
	return &MongoSavedContractorRepo{coll: database.Collection("saved_contractors")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoSavedContractorRepo) Create(saved *models.SavedContractor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, saved); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to save contractor: %w", err)
	}
	return nil
}

func (r *MongoSavedContractorRepo) IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func (r *MongoSavedContractorRepo) Exists(clientID, contractorID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID, "contractorId": contractorID}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check saved contractor: %w", err)
	}
	return count > 0, nil
}

func (r *MongoSavedContractorRepo) Delete(clientID, contractorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID, "contractorId": contractorID}
	if _, err := r.coll.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to remove saved contractor: %w", err)
	}
	return nil
}

func (r *MongoSavedContractorRepo) ListByClient(clientID string) ([]models.SavedContractor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved contractors: %w", err)
	}
	defer cursor.Close(ctx)

	var saved []models.SavedContractor
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved contractors: %w", err)
	}
	return saved, nil
}

func (r *MongoSavedContractorRepo) CountByClient(clientID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return 0, fmt.Errorf("failed to count saved contractors: %w", err)
	}
	return count, nil
}
