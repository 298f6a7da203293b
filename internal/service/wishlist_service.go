package service

import (
	"context"
	"errors"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
)

// WishlistService handles wishlist business logic.
type WishlistService struct {
	wishlist repository.WishlistRepository
	products repository.ProductRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(wishlist repository.WishlistRepository, products repository.ProductRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, products: products}
}

// AddEntry adds a product to an email's wishlist. The referenced product
// must exist; repository.ErrNotFound from that check is returned unchanged.
// Adding an existing (email, product_id) pair is idempotent and returns the
// existing entry's identifier. The check-then-insert is not atomic; a
// concurrent duplicate is accepted rather than coordinated away.
func (s *WishlistService) AddEntry(ctx context.Context, e models.WishlistEntry) (string, error) {
	if err := models.Validate(e); err != nil {
		return "", err
	}

	if _, err := s.products.GetByID(ctx, e.ProductID); err != nil {
		return "", err
	}

	existing, err := s.wishlist.Get(ctx, e.Email, e.ProductID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	return s.wishlist.Create(ctx, e)
}

// ListEntries returns every wishlist entry for the email, each with a
// snapshot of the referenced product. A dangling product reference yields a
// nil product instead of failing the whole request.
func (s *WishlistService) ListEntries(ctx context.Context, email string) ([]models.WishlistItem, error) {
	entries, err := s.wishlist.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	items := make([]models.WishlistItem, 0, len(entries))
	for _, e := range entries {
		item := models.WishlistItem{ID: e.ID, ProductID: e.ProductID}

		p, err := s.products.GetByID(ctx, e.ProductID)
		switch {
		case err == nil:
			item.Product = p
		case errors.Is(err, repository.ErrNotFound):
			// dangling reference
		default:
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}

// RemoveEntry deletes at most one matching entry and reports how many were
// removed. A missing pair is a successful no-op reporting 0.
func (s *WishlistService) RemoveEntry(ctx context.Context, email, productID string) (int64, error) {
	return s.wishlist.Delete(ctx, email, productID)
}
