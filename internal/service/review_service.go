package service

import (
	"context"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
)

const (
	// maxReviewList caps the review listing endpoint.
	maxReviewList = 200
	// maxRatingSample caps the number of reviews fed into the rating
	// aggregate.
	maxRatingSample = 1000
)

// ReviewService handles review business logic, including the product
// existence check performed before a review is attached.
type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews repository.ReviewRepository, products repository.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// CreateReview validates a review and persists it after confirming the
// referenced product exists. A repository.ErrNotFound from the lookup is
// returned unchanged so the handler surfaces the same 404 a direct product
// lookup would.
func (s *ReviewService) CreateReview(ctx context.Context, rv models.Review) (string, error) {
	if err := models.Validate(rv); err != nil {
		return "", err
	}

	if _, err := s.products.GetByID(ctx, rv.ProductID); err != nil {
		return "", err
	}

	return s.reviews.Create(ctx, rv)
}

// ListReviews returns up to 200 reviews for a product with their storage
// identifiers stripped.
func (s *ReviewService) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID, maxReviewList)
	if err != nil {
		return nil, err
	}

	for i := range reviews {
		reviews[i].ID = ""
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// ProductRating computes the arithmetic mean of ratings over up to 1000
// reviews for the product, rounded to 2 decimal places. Reviews without a
// rating are skipped. Zero rated reviews yields {average: 0, count: 0}.
func (s *ReviewService) ProductRating(ctx context.Context, productID string) (*models.ProductRating, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID, maxRatingSample)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	count := 0
	for _, rv := range reviews {
		if rv.Rating == nil {
			continue
		}
		sum += *rv.Rating
		count++
	}

	average := 0.0
	if count > 0 {
		average = round2(sum / float64(count))
	}

	return &models.ProductRating{
		ProductID: productID,
		Average:   average,
		Count:     count,
	}, nil
}
