package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
	"clothingshop/internal/service"
)

// WishlistHandler handles wishlist-related HTTP requests
type WishlistHandler struct {
	service *service.WishlistService
	logger  *slog.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(service *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{service: service, logger: logger}
}

// ListEntries handles GET /api/wishlist?email=...
func (h *WishlistHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, http.StatusUnprocessableEntity, "email query parameter is required", h.logger)
		return
	}

	items, err := h.service.ListEntries(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to list wishlist", "email", email, "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// AddEntry handles POST /api/wishlist. Adding an already-wishlisted product
// returns the existing entry's id.
func (h *WishlistHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var payload models.WishlistEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("failed to decode wishlist payload", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.AddEntry(r.Context(), payload)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.logger.Info("wishlist add rejected, product not found", "product_id", payload.ProductID)
		} else {
			h.logger.Error("failed to add wishlist entry", "error", err)
		}
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
}

// RemoveEntry handles DELETE /api/wishlist?email=...&product_id=...
// Removing a pair that is not present reports {"deleted": 0}.
func (h *WishlistHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	email := q.Get("email")
	productID := q.Get("product_id")
	if email == "" || productID == "" {
		WriteError(w, http.StatusUnprocessableEntity, "email and product_id query parameters are required", h.logger)
		return
	}

	deleted, err := h.service.RemoveEntry(r.Context(), email, productID)
	if err != nil {
		h.logger.Error("failed to remove wishlist entry", "email", email, "product_id", productID, "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int64{"deleted": deleted}, h.logger)
}
