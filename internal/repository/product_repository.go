package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clothingshop/internal/models"
	"clothingshop/internal/store"
)

// ProductFilter holds the supported catalog filters. Zero-value fields are
// not applied; non-zero fields combine with AND semantics.
type ProductFilter struct {
	Category string
	Size     string
	Color    string
	Query    string
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p models.Product) (string, error)
	Categories(ctx context.Context) ([]string, error)
}

// productDoc pairs the stored fields with the raw _id, which may be an
// ObjectID or a plain string.
type productDoc struct {
	RawID          any `bson:"_id,omitempty"`
	models.Product `bson:",inline"`
}

// MongoProductRepository implements ProductRepository over the product
// collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a product repository backed by MongoDB.
func NewMongoProductRepository(db *store.Mongo) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(store.CollProduct)}
}

// buildProductFilter translates catalog query parameters into a Mongo
// filter. The free-text query expands to a case-insensitive OR over title
// and description.
func buildProductFilter(f ProductFilter) bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Size != "" {
		filter["sizes"] = f.Size
	}
	if f.Color != "" {
		filter["colors"] = f.Color
	}
	if f.Query != "" {
		regex := bson.M{"$regex": f.Query, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"description": regex},
		}
	}

	return filter
}

// idFilter builds the lookup filter for an identifier string: parse as an
// ObjectID first, fall back to string _id equality.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func (r *MongoProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	opts := options.Find().SetLimit(maxProductResults)
	cur, err := r.coll.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		p := d.Product
		p.ID = idString(d.RawID)
		products = append(products, p)
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p := doc.Product
	p.ID = idString(doc.RawID)
	return &p, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, p models.Product) (string, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return idString(res.InsertedID), nil
}

func (r *MongoProductRepository) Categories(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}

	var categories []string
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage, used in tests and local runs without a database.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates an empty in-memory product repository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: make(map[string]models.Product)}
}

func (r *InMemoryProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.products))
	for id, p := range r.products {
		if !matchProduct(p, filter) {
			continue
		}
		p.ID = id
		products = append(products, p)
		if len(products) == maxProductResults {
			break
		}
	}
	return products, nil
}

func matchProduct(p models.Product, f ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Size != "" && !containsString(p.Sizes, f.Size) {
		return false
	}
	if f.Color != "" && !containsString(p.Colors, f.Color) {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.products[id]
	if !exists {
		return nil, ErrNotFound
	}
	p.ID = id
	return &p, nil
}

func (r *InMemoryProductRepository) Create(ctx context.Context, p models.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	p.ID = ""
	r.products[id] = p
	return id, nil
}

func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
