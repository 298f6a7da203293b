package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clothingshop/internal/models"
	"clothingshop/internal/store"
)

// WishlistRepository defines the interface for wishlist data access.
// Delete removes the first matching entry only, matching the
// one-entry-per-pair invariant.
type WishlistRepository interface {
	Create(ctx context.Context, e models.WishlistEntry) (string, error)
	Get(ctx context.Context, email, productID string) (*models.WishlistEntry, error)
	ListByEmail(ctx context.Context, email string) ([]models.WishlistEntry, error)
	Delete(ctx context.Context, email, productID string) (int64, error)
}

type wishlistDoc struct {
	RawID                any `bson:"_id,omitempty"`
	models.WishlistEntry `bson:",inline"`
}

// MongoWishlistRepository implements WishlistRepository over the wishlist
// collection.
type MongoWishlistRepository struct {
	coll *mongo.Collection
}

// NewMongoWishlistRepository creates a wishlist repository backed by MongoDB.
func NewMongoWishlistRepository(db *store.Mongo) *MongoWishlistRepository {
	return &MongoWishlistRepository{coll: db.Collection(store.CollWishlist)}
}

func pairFilter(email, productID string) bson.M {
	return bson.M{"email": email, "product_id": productID}
}

func (r *MongoWishlistRepository) Create(ctx context.Context, e models.WishlistEntry) (string, error) {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return "", err
	}
	return idString(res.InsertedID), nil
}

func (r *MongoWishlistRepository) Get(ctx context.Context, email, productID string) (*models.WishlistEntry, error) {
	var doc wishlistDoc
	err := r.coll.FindOne(ctx, pairFilter(email, productID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	e := doc.WishlistEntry
	e.ID = idString(doc.RawID)
	return &e, nil
}

func (r *MongoWishlistRepository) ListByEmail(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []wishlistDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]models.WishlistEntry, 0, len(docs))
	for _, d := range docs {
		e := d.WishlistEntry
		e.ID = idString(d.RawID)
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *MongoWishlistRepository) Delete(ctx context.Context, email, productID string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, pairFilter(email, productID))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// InMemoryWishlistRepository implements WishlistRepository with in-memory
// storage.
type InMemoryWishlistRepository struct {
	mu      sync.RWMutex
	entries map[string]models.WishlistEntry
}

// NewInMemoryWishlistRepository creates an empty in-memory wishlist
// repository.
func NewInMemoryWishlistRepository() *InMemoryWishlistRepository {
	return &InMemoryWishlistRepository{entries: make(map[string]models.WishlistEntry)}
}

func (r *InMemoryWishlistRepository) Create(ctx context.Context, e models.WishlistEntry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	e.ID = ""
	r.entries[id] = e
	return id, nil
}

func (r *InMemoryWishlistRepository) Get(ctx context.Context, email, productID string) (*models.WishlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, e := range r.entries {
		if e.Email == email && e.ProductID == productID {
			e.ID = id
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryWishlistRepository) ListByEmail(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.WishlistEntry, 0)
	for id, e := range r.entries {
		if e.Email != email {
			continue
		}
		e.ID = id
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *InMemoryWishlistRepository) Delete(ctx context.Context, email, productID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		if e.Email == email && e.ProductID == productID {
			delete(r.entries, id)
			return 1, nil
		}
	}
	return 0, nil
}
