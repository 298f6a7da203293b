package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a referenced document does not exist. It is
// shared across repositories so existence-check failures can be recognized
// and re-surfaced by the services.
var ErrNotFound = errors.New("not found")

// maxProductResults caps product listings.
const maxProductResults = 100

// idString renders a storage identifier as the string form surfaced to
// clients. Documents created by external tooling may carry plain-string ids.
func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
