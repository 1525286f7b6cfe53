package contractorRepo

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

// MongoContractorRepo implements ContractorRepository using MongoDB.
type MongoContractorRepo struct {
	coll *mongo.Collection
}

// NewMongoContractorRepo creates a new instance of ContractorRepository using MongoDB.
func NewMongoContractorRepo() ContractorRepository {
	return &MongoContractorRepo{coll: database.Collection("contractors")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoContractorRepo) Create(contractor *models.Contractor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, contractor); err != nil {
		return fmt.Errorf("failed to create contractor: %w", err)
	}
	return nil
}

func (r *MongoContractorRepo) GetByID(id string) (*models.Contractor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contractor models.Contractor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contractor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contractor with id %s: %w", id, err)
	}
	return &contractor, nil
}

func (r *MongoContractorRepo) GetByUserID(userID string) (*models.Contractor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contractor models.Contractor
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&contractor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contractor for user %s: %w", userID, err)
	}
	return &contractor, nil
}

func (r *MongoContractorRepo) Update(contractor *models.Contractor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	contractor.UpdatedAt = time.Now().UTC()
	filter := bson.M{"id": contractor.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": contractor})
	if err != nil {
		return fmt.Errorf("failed to update contractor with id %s: %w", contractor.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contractor with id %s not found", contractor.ID)
	}
	return nil
}

// Search applies the equality/range filters server-side. Results come back
// sorted by id so the ranking engine starts from a stable order.
func (r *MongoContractorRepo) Search(criteria SearchCriteria) ([]models.Contractor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"isActive": true,
		"verified": true,
	}
	if criteria.Category != "" && criteria.Category != "all" {
		filter["services.category"] = criteria.Category
	}
	if criteria.Location != "" {
		filter["location"] = bson.M{"$regex": criteria.Location, "$options": "i"}
	}
	if criteria.MinRating > 0 {
		filter["rating.average"] = bson.M{"$gte": criteria.MinRating}
	}
	if criteria.MaxRate > 0 {
		filter["hourlyRate"] = bson.M{"$lte": criteria.MaxRate}
	}
	if criteria.Availability != "" {
		// Availability is a weekday-keyed map; match the substring against any
		// day the contractor marked available.
		var days bson.A
		for _, day := range models.WeekdayKeys {
			days = append(days, bson.M{
				"availability." + day + ".available": true,
				"availability." + day + ".hours":     bson.M{"$regex": criteria.Availability, "$options": "i"},
			})
		}
		filter["$or"] = days
	}

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("contractor search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var contractors []models.Contractor
	if err := cursor.All(ctx, &contractors); err != nil {
		return nil, fmt.Errorf("failed to decode contractors: %w", err)
	}
	return contractors, nil
}

// IncrementJobCounters uses $inc so concurrent completions never lose updates.
func (r *MongoContractorRepo) IncrementJobCounters(id string, completedDelta, totalDelta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{
			"completedJobs": completedDelta,
			"totalJobs":     totalDelta,
		},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment job counters for contractor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contractor with id %s not found", id)
	}
	return nil
}

func (r *MongoContractorRepo) SetRating(id string, average float64, count int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"rating.average": average,
			"rating.count":   count,
			"updatedAt":      time.Now().UTC(),
		},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set rating for contractor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contractor with id %s not found", id)
	}
	return nil
}
