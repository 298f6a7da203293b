package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"clothingshop/internal/models"
	"clothingshop/internal/repository"
	"clothingshop/internal/service"
	"clothingshop/pkg/logger"
)

func newProductRouter(t *testing.T) (*chi.Mux, *service.ProductService) {
	t.Helper()

	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	handler := NewProductHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Post("/api/products", handler.CreateProduct)
	r.Get("/api/products/{productID}", handler.GetProduct)
	r.Get("/api/categories", handler.ListCategories)
	return r, svc
}

func seedCatalog(t *testing.T, svc *service.ProductService) map[string]string {
	t.Helper()

	ids := make(map[string]string)
	for _, p := range []models.Product{
		{Title: "Linen Shirt", Description: "Breathable summer shirt", Price: 39.99, Category: "Tops", Sizes: []string{"S", "M"}, Colors: []string{"white"}},
		{Title: "Oxford Shirt", Description: "Classic button-down", Price: 49.99, Category: "Tops", Sizes: []string{"M", "L"}, Colors: []string{"blue"}},
		{Title: "Chino Pants", Description: "Slim fit", Price: 59.99, Category: "Bottoms", Sizes: []string{"L"}, Colors: []string{"beige"}},
		{Title: "Rain Jacket", Description: "Waterproof shell", Price: 89.99, Category: "Outerwear", Sizes: []string{"M", "L", "XL"}, Colors: []string{"black", "yellow"}},
	} {
		id, err := svc.CreateProduct(context.Background(), p)
		if err != nil {
			t.Fatalf("failed to seed product %q: %v", p.Title, err)
		}
		ids[p.Title] = id
	}
	return ids
}

func TestListProducts_Filters(t *testing.T) {
	r, svc := newProductRouter(t)
	seedCatalog(t, svc)

	tests := []struct {
		name       string
		url        string
		wantTitles map[string]bool
	}{
		{
			name:       "no filters returns everything",
			url:        "/api/products",
			wantTitles: map[string]bool{"Linen Shirt": true, "Oxford Shirt": true, "Chino Pants": true, "Rain Jacket": true},
		},
		{
			name:       "category is an exact match",
			url:        "/api/products?category=Tops",
			wantTitles: map[string]bool{"Linen Shirt": true, "Oxford Shirt": true},
		},
		{
			name:       "category match is case-sensitive",
			url:        "/api/products?category=tops",
			wantTitles: map[string]bool{},
		},
		{
			name:       "q matches title case-insensitively",
			url:        "/api/products?q=shirt",
			wantTitles: map[string]bool{"Linen Shirt": true, "Oxford Shirt": true},
		},
		{
			name:       "q matches description too",
			url:        "/api/products?q=waterproof",
			wantTitles: map[string]bool{"Rain Jacket": true},
		},
		{
			name:       "size membership",
			url:        "/api/products?size=S",
			wantTitles: map[string]bool{"Linen Shirt": true},
		},
		{
			name:       "filters combine with and",
			url:        "/api/products?category=Tops&size=M&color=blue",
			wantTitles: map[string]bool{"Oxford Shirt": true},
		},
		{
			name:       "no match is empty, not an error",
			url:        "/api/products?category=Shoes",
			wantTitles: map[string]bool{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var products []models.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(products) != len(tt.wantTitles) {
				t.Fatalf("expected %d products, got %d", len(tt.wantTitles), len(products))
			}
			for _, p := range products {
				if !tt.wantTitles[p.Title] {
					t.Errorf("unexpected product %q", p.Title)
				}
				if p.ID == "" {
					t.Errorf("product %q has no id attached", p.Title)
				}
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	r, svc := newProductRouter(t)
	ids := seedCatalog(t, svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/"+ids["Linen Shirt"], nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var p models.Product
		if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if p.ID != ids["Linen Shirt"] {
			t.Errorf("expected id %s, got %s", ids["Linen Shirt"], p.ID)
		}
		if p.Title != "Linen Shirt" {
			t.Errorf("expected title 'Linen Shirt', got %q", p.Title)
		}
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-real-id", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if response["error"] != "Product not found" {
			t.Errorf("expected error 'Product not found', got %q", response["error"])
		}
	})
}

func TestCreateProduct(t *testing.T) {
	r, svc := newProductRouter(t)

	t.Run("valid payload", func(t *testing.T) {
		body, _ := json.Marshal(models.Product{
			Title:    "Wool Sweater",
			Price:    79.99,
			Category: "Knitwear",
		})

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response["id"] == "" {
			t.Fatal("expected a generated id")
		}

		// Schema defaults must be applied on the stored document.
		stored, err := svc.GetProduct(context.Background(), response["id"])
		if err != nil {
			t.Fatalf("failed to read back product: %v", err)
		}
		if stored.InStock == nil || !*stored.InStock {
			t.Error("expected in_stock to default to true")
		}
		if len(stored.Sizes) != 4 {
			t.Errorf("expected default sizes, got %v", stored.Sizes)
		}
		if len(stored.Colors) != 1 || stored.Colors[0] != "black" {
			t.Errorf("expected default colors, got %v", stored.Colors)
		}
		if stored.Rating == nil || *stored.Rating != 4.5 {
			t.Error("expected rating to default to 4.5")
		}
	})

	t.Run("out-of-range fields are 422", func(t *testing.T) {
		tests := []struct {
			name    string
			product models.Product
		}{
			{"negative price", models.Product{Title: "Bad", Price: -1, Category: "Tops"}},
			{"missing title", models.Product{Price: 10, Category: "Tops"}},
			{"missing category", models.Product{Title: "Bad", Price: 10}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				body, _ := json.Marshal(tt.product)
				req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusUnprocessableEntity {
					t.Errorf("expected status 422, got %d", w.Code)
				}
			})
		}
	})

	t.Run("malformed body is 422", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected status 422, got %d", w.Code)
		}
	})
}

func TestListCategories(t *testing.T) {
	r, svc := newProductRouter(t)
	seedCatalog(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []string{"Bottoms", "Outerwear", "Tops"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("expected sorted categories %v, got %v", want, categories)
		}
	}
}
