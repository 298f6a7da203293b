package models

// WishlistEntry links an email to a product. At most one entry per
// (email, product_id) pair is expected.
type WishlistEntry struct {
	ID        string `json:"id,omitempty" bson:"-"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`
}

// WishlistItem is a wishlist entry shaped for responses, with an embedded
// snapshot of the referenced product. Product is nil when the reference is
// dangling.
type WishlistItem struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Product   *Product `json:"product"`
}
