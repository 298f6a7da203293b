package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
	"clothingshop/internal/service"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

// CreateReview handles POST /api/reviews. A review for a product that does
// not exist is rejected with 404 and nothing is persisted.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var payload models.Review
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("failed to decode review payload", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateReview(r.Context(), payload)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.logger.Info("review rejected, product not found", "product_id", payload.ProductID)
		} else {
			h.logger.Error("failed to create review", "error", err)
		}
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("review created", "review_id", id, "product_id", payload.ProductID)
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
}

// ListProductReviews handles GET /api/products/{productID}/reviews
func (h *ReviewHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	reviews, err := h.service.ListReviews(r.Context(), productID)
	if err != nil {
		h.logger.Error("failed to list reviews", "product_id", productID, "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, reviews, h.logger)
}

// GetProductRating handles GET /api/products/{productID}/rating
func (h *ReviewHandler) GetProductRating(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	rating, err := h.service.ProductRating(r.Context(), productID)
	if err != nil {
		h.logger.Error("failed to compute rating", "product_id", productID, "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, rating, h.logger)
}
