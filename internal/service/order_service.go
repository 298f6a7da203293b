package service

import (
	"context"
	"math"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
)

// OrderService handles order business logic
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// CreateOrder validates an order and persists it with server-computed
// totals. Client-supplied subtotal and total are advisory only and are
// overwritten: subtotal = sum of price*quantity over the items, total =
// subtotal + shipping, all rounded to 2 decimal places. This keeps clients
// from tampering with their own totals.
func (s *OrderService) CreateOrder(ctx context.Context, o models.Order) (string, error) {
	if err := models.Validate(o); err != nil {
		return "", err
	}

	subtotal := 0.0
	for _, item := range o.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	o.Subtotal = round2(subtotal)
	o.Shipping = round2(o.Shipping)
	o.Total = round2(o.Subtotal + o.Shipping)

	return s.repo.Create(ctx, o)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
