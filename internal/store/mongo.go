package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, lowercase of the schema name.
const (
	CollProduct  = "product"
	CollOrder    = "order"
	CollReview   = "review"
	CollWishlist = "wishlist"
	CollUser     = "user"
)

// Mongo wraps the MongoDB client and database handle shared by the
// repositories and the /test diagnostic.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for the given URI and verifies the connection with
// a ping before returning.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Mongo{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Database returns the database handle.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// Collection returns a handle for the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks whether the database is currently reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists the collections present in the database.
func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

// Disconnect closes the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
