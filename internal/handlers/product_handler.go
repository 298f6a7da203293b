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

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

// ListProducts handles GET /api/products.
// Query parameters: category (exact match), size and color (membership),
// q (case-insensitive substring over title or description). Filters combine
// with AND. No match returns an empty list.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ProductFilter{
		Category: q.Get("category"),
		Size:     q.Get("size"),
		Color:    q.Get("color"),
		Query:    q.Get("q"),
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.logger.Info("product not found", "product_id", productID)
		} else {
			h.logger.Error("failed to get product", "product_id", productID, "error", err)
		}
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload models.Product
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("failed to decode product payload", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), payload)
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("product created", "product_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
}

// ListCategories handles GET /api/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, categories, h.logger)
}
