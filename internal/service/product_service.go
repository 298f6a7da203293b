package service

import (
	"context"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ListProducts returns up to 100 products matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates a product payload, applies schema defaults and
// persists it. Returns the generated identifier.
func (s *ProductService) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	p.ApplyDefaults()
	if err := models.Validate(p); err != nil {
		return "", err
	}
	return s.repo.Create(ctx, p)
}

// ListCategories returns the sorted set of distinct non-empty categories.
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
