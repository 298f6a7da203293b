package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clothingshop/internal/models"
	"clothingshop/internal/store"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, rv models.Review) (string, error)
	ListByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error)
}

type reviewDoc struct {
	RawID         any `bson:"_id,omitempty"`
	models.Review `bson:",inline"`
}

// MongoReviewRepository implements ReviewRepository over the review
// collection.
type MongoReviewRepository struct {
	coll *mongo.Collection
}

// NewMongoReviewRepository creates a review repository backed by MongoDB.
func NewMongoReviewRepository(db *store.Mongo) *MongoReviewRepository {
	return &MongoReviewRepository{coll: db.Collection(store.CollReview)}
}

func (r *MongoReviewRepository) Create(ctx context.Context, rv models.Review) (string, error) {
	res, err := r.coll.InsertOne(ctx, rv)
	if err != nil {
		return "", err
	}
	return idString(res.InsertedID), nil
}

func (r *MongoReviewRepository) ListByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(docs))
	for _, d := range docs {
		rv := d.Review
		rv.ID = idString(d.RawID)
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// InMemoryReviewRepository implements ReviewRepository with in-memory
// storage.
type InMemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]models.Review
}

// NewInMemoryReviewRepository creates an empty in-memory review repository.
func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{reviews: make(map[string]models.Review)}
}

func (r *InMemoryReviewRepository) Create(ctx context.Context, rv models.Review) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	rv.ID = ""
	r.reviews[id] = rv
	return id, nil
}

func (r *InMemoryReviewRepository) ListByProduct(ctx context.Context, productID string, limit int64) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0)
	for id, rv := range r.reviews {
		if rv.ProductID != productID {
			continue
		}
		rv.ID = id
		reviews = append(reviews, rv)
		if int64(len(reviews)) == limit {
			break
		}
	}
	return reviews, nil
}
