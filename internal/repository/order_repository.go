package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"clothingshop/internal/models"
	"clothingshop/internal/store"
)

// OrderRepository defines the interface for order data access. Orders are
// write-only at the API level; nothing reads them back.
type OrderRepository interface {
	Create(ctx context.Context, o models.Order) (string, error)
}

// MongoOrderRepository implements OrderRepository over the order collection.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository creates an order repository backed by MongoDB.
func NewMongoOrderRepository(db *store.Mongo) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(store.CollOrder)}
}

func (r *MongoOrderRepository) Create(ctx context.Context, o models.Order) (string, error) {
	res, err := r.coll.InsertOne(ctx, o)
	if err != nil {
		return "", err
	}
	return idString(res.InsertedID), nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *InMemoryOrderRepository) Create(ctx context.Context, o models.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	o.ID = ""
	r.orders[id] = o
	return id, nil
}

// Get returns a stored order. The HTTP API never reads orders back; tests
// use this to inspect what was persisted.
func (r *InMemoryOrderRepository) Get(id string) (models.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	return o, ok
}
