package models

// Review is a product review. Rating is a pointer so documents stored
// without a rating can be skipped when aggregating.
type Review struct {
	ID        string   `json:"id,omitempty" bson:"-"`
	ProductID string   `json:"product_id" bson:"product_id" validate:"required"`
	Rating    *float64 `json:"rating" bson:"rating,omitempty" validate:"required,gte=1,lte=5"`
	Comment   string   `json:"comment,omitempty" bson:"comment,omitempty"`
	Author    string   `json:"author,omitempty" bson:"author,omitempty"`
	Email     string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}
