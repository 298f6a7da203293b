package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
	"clothingshop/internal/service"
	"clothingshop/pkg/logger"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	repo := repository.NewInMemoryOrderRepository()
	svc := service.NewOrderService(repo)
	log := logger.New("error")
	handler := NewOrderHandler(svc, log)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkStored    func(*testing.T, models.Order)
	}{
		{
			name: "totals recomputed from items",
			body: models.Order{
				Email: "buyer@example.com",
				Items: []models.OrderItem{
					{ProductID: "p1", Title: "Linen Shirt", Price: 10, Quantity: 2},
					{ProductID: "p2", Title: "Socks", Price: 5, Quantity: 1},
				},
				Shipping: 3,
				Subtotal: 0.01,
				Total:    12345,
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, stored models.Order) {
				if stored.Subtotal != 25.0 {
					t.Errorf("expected subtotal 25.0, got %v", stored.Subtotal)
				}
				if stored.Total != 28.0 {
					t.Errorf("expected total 28.0, got %v", stored.Total)
				}
			},
		},
		{
			name: "empty items rejected",
			body: models.Order{
				Email: "buyer@example.com",
				Items: []models.OrderItem{},
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid email rejected",
			body: models.Order{
				Email: "not-an-email",
				Items: []models.OrderItem{{ProductID: "p1", Price: 10, Quantity: 1}},
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed body rejected",
			body:           "{broken",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if s, ok := tt.body.(string); ok {
				buf.WriteString(s)
			} else if err := json.NewEncoder(&buf).Encode(tt.body); err != nil {
				t.Fatalf("failed to encode body: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", &buf)
			w := httptest.NewRecorder()
			handler.CreateOrder(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["id"] == "" {
				t.Fatal("expected a generated id")
			}

			if tt.checkStored != nil {
				stored, ok := repo.Get(response["id"])
				if !ok {
					t.Fatal("order was not persisted")
				}
				tt.checkStored(t, stored)
			}
		})
	}
}
