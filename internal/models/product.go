package models

// Product represents a clothing item in the catalog.
// ID is the storage identifier surfaced as a string; it is never written
// back as a document field.
type Product struct {
	ID          string   `json:"id,omitempty" bson:"-"`
	Title       string   `json:"title" bson:"title" validate:"required"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64  `json:"price" bson:"price" validate:"gte=0"`
	Category    string   `json:"category" bson:"category" validate:"required"`
	InStock     *bool    `json:"in_stock" bson:"in_stock"`
	Sizes       []string `json:"sizes" bson:"sizes"`
	Colors      []string `json:"colors" bson:"colors"`
	ImageURL    string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Badge       string   `json:"badge,omitempty" bson:"badge,omitempty"`
}

// ApplyDefaults fills the schema defaults for fields the client omitted.
func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if len(p.Sizes) == 0 {
		p.Sizes = []string{"S", "M", "L", "XL"}
	}
	if len(p.Colors) == 0 {
		p.Colors = []string{"black"}
	}
	if p.Rating == nil {
		rating := 4.5
		p.Rating = &rating
	}
}

// ProductRating is the live aggregate computed from reviews. It is
// independent of the static Product.Rating field; the two are never
// reconciled.
type ProductRating struct {
	ProductID string  `json:"product_id"`
	Average   float64 `json:"average"`
	Count     int     `json:"count"`
}
