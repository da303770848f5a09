package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"printdesk/internal/adapter/http/handlers/mocks"
	"printdesk/internal/domain/entities"
	"printdesk/internal/domain/pricing"
	"printdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(t *testing.T) (*gin.Engine, *mocks.MockIPricingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIPricingUseCase(gomock.NewController(t))
	h := NewPricingHandler(uc)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.POST("/v1/pricing/calculate", h.Calculate)
	r.POST("/v1/pricing/cart-item", h.BuildCartItem)
	return r, uc
}

func TestPricingHandler_Calculate(t *testing.T) {
	t.Run("product id required", func(t *testing.T) {
		r, _ := newPricingRouter(t)
		w := serve(r, http.MethodPost, "/v1/pricing/calculate", `{"selection":{"quantity":100}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unit price", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().Calculate(gomock.Any(), "PROD-001", gomock.Any()).
			Return(pricing.Result{TotalPrice: 50, Quantity: 200, Breakdown: "200 pcs"}, nil)

		w := serve(r, http.MethodPost, "/v1/pricing/calculate", `{"productId":"PROD-001","selection":{"quantity":200}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["totalPrice"] != float64(50) || body["unitPrice"] != 0.25 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().Calculate(gomock.Any(), "PROD-404", gomock.Any()).Return(pricing.Result{}, usecase.ErrProductNotFound)

		w := serve(r, http.MethodPost, "/v1/pricing/calculate", `{"productId":"PROD-404"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPricingHandler_BuildCartItem(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().BuildCartItem(gomock.Any(), "PROD-002", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.Selection, override *float64) (entities.CartItem, error) {
				if override == nil || *override != 120 {
					t.Fatalf("expected override 120, got %v", override)
				}
				return entities.CartItem{ProductID: "PROD-002", TotalPrice: 120, IsOverridden: true}, nil
			})

		w := serve(r, http.MethodPost, "/v1/pricing/cart-item", `{"productId":"PROD-002","priceOverride":120}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("negative override", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().BuildCartItem(gomock.Any(), "PROD-002", gomock.Any(), gomock.Any()).Return(entities.CartItem{}, usecase.ErrInvalidPriceOverride)

		w := serve(r, http.MethodPost, "/v1/pricing/cart-item", `{"productId":"PROD-002","priceOverride":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_Products(t *testing.T) {
	r, uc := newPricingRouter(t)
	uc.EXPECT().ListProducts(gomock.Any()).Return([]entities.Product{{ID: "PROD-001"}, {ID: "PROD-002"}}, nil)
	uc.EXPECT().GetProduct(gomock.Any(), "PROD-009").Return(entities.Product{}, usecase.ErrProductNotFound)

	w := serve(r, http.MethodGet, "/v1/products", "")
	var products []entities.Product
	_ = json.Unmarshal(w.Body.Bytes(), &products)
	if w.Code != http.StatusOK || len(products) != 2 {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/v1/products/PROD-009", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
