package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"clothingshop/internal/models"
	"clothingshop/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

// CreateOrder handles POST /api/orders. Totals in the payload are advisory;
// the stored order carries server-computed values.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload models.Order
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("failed to decode order payload", "error", err)
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateOrder(r.Context(), payload)
	if err != nil {
		h.logger.Error("failed to create order", "error", err)
		writeServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("order created", "order_id", id, "items_count", len(payload.Items))
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.logger)
}
