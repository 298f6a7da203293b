package models

// OrderItem is a line item embedded in an order. Title, price and image are
// snapshots copied at order time; they do not track later product changes.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"gte=1"`
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty"`
	ImageURL  string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
}

// Order is a customer order. Subtotal, shipping and total submitted by the
// client are advisory only; the server recomputes them from the items before
// persisting.
type Order struct {
	ID       string      `json:"id,omitempty" bson:"-"`
	Email    string      `json:"email" bson:"email" validate:"required,email"`
	Items    []OrderItem `json:"items" bson:"items" validate:"required,min=1,dive"`
	Subtotal float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Shipping float64     `json:"shipping" bson:"shipping" validate:"gte=0"`
	Total    float64     `json:"total" bson:"total" validate:"gte=0"`
	Note     string      `json:"note,omitempty" bson:"note,omitempty"`
}
