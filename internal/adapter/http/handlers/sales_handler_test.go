package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"printdesk/internal/adapter/http/handlers/mocks"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const lineItems = `[{"id":"item-1","productId":"PROD-001","productName":"Business Cards","quantity":100,"unitPrice":0.3,"totalPrice":30}]`

func TestQuoteHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
		gin.SetMode(gin.TestMode)
		uc := mocks.NewMockIQuoteUseCase(gomock.NewController(t))
		h := NewQuoteHandler(uc)
		r := gin.New()
		r.GET("/v1/quotes", h.ListQuotes)
		r.POST("/v1/quotes", h.CreateQuote)
		r.GET("/v1/quotes/:id", h.GetQuote)
		r.PUT("/v1/quotes/:id", h.UpdateQuote)
		r.DELETE("/v1/quotes/:id", h.DeleteQuote)
		r.POST("/v1/quotes/:id/convert", h.ConvertQuote)
		return r, uc
	}

	t.Run("create", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.CustomerName != "Aina" || len(q.Items) != 1 {
				t.Fatalf("unexpected quote: %+v", q)
			}
			q.ID = "QT-1"
			q.Status = entities.QuoteStatusDraft
			return q, nil
		})

		w := serve(r, http.MethodPost, "/v1/quotes", `{"customerName":"Aina","items":`+lineItems+`,"totalAmount":30}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("create without items", func(t *testing.T) {
		r, _ := setup(t)
		w := serve(r, http.MethodPost, "/v1/quotes", `{"customerName":"Aina"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "QT-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodGet, "/v1/quotes/QT-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("convert", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Convert(gomock.Any(), "QT-1").Return(entities.Invoice{ID: "INV-1", QuoteID: "QT-1", GeneratedFromQuote: true}, nil)

		w := serve(r, http.MethodPost, "/v1/quotes/QT-1/convert", "")
		var inv entities.Invoice
		_ = json.Unmarshal(w.Body.Bytes(), &inv)
		if w.Code != http.StatusCreated || inv.QuoteID != "QT-1" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("convert twice", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Convert(gomock.Any(), "QT-1").Return(entities.Invoice{}, usecase.ErrQuoteAlreadyConverted)

		w := serve(r, http.MethodPost, "/v1/quotes/QT-1/convert", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Delete(gomock.Any(), "QT-1").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/quotes/QT-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase) {
		gin.SetMode(gin.TestMode)
		uc := mocks.NewMockIInvoiceUseCase(gomock.NewController(t))
		h := NewInvoiceHandler(uc, zap.NewNop())
		r := gin.New()
		r.GET("/v1/invoices", h.ListInvoices)
		r.POST("/v1/invoices", h.CreateInvoice)
		r.PUT("/v1/invoices/:id", h.UpdateInvoice)
		r.POST("/v1/invoices/:id/orders", h.ConvertToOrders)
		return r, uc
	}

	t.Run("list", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{{ID: "INV-2"}, {ID: "INV-1"}}, nil)

		w := serve(r, http.MethodGet, "/v1/invoices", "")
		var list []entities.Invoice
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if w.Code != http.StatusOK || len(list) != 2 || list[0].ID != "INV-2" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update invalid status", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Update(gomock.Any(), "INV-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvalidInvoiceStatus)

		w := serve(r, http.MethodPut, "/v1/invoices/INV-1", `{"customerName":"Aina","items":`+lineItems+`,"status":"Refunded"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("convert to orders", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ConvertToOrders(gomock.Any(), entities.Actor{Name: "Sam"}, "INV-1").
			Return([]entities.Order{{ID: "ORD-INV-1-1"}, {ID: "ORD-INV-1-2"}}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-1/orders", "", HeaderActor, "Sam")
		var body struct {
			InvoiceID string           `json:"invoiceId"`
			Orders    []entities.Order `json:"orders"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusCreated || body.InvoiceID != "INV-1" || len(body.Orders) != 2 {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("convert twice", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ConvertToOrders(gomock.Any(), gomock.Any(), "INV-1").Return(nil, usecase.ErrInvoiceAlreadyConverted)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-1/orders", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestCouponHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockICouponUseCase) {
		gin.SetMode(gin.TestMode)
		uc := mocks.NewMockICouponUseCase(gomock.NewController(t))
		h := NewCouponHandler(uc)
		r := gin.New()
		r.GET("/v1/coupons", h.ListCoupons)
		r.POST("/v1/coupons", h.SaveCoupon)
		r.DELETE("/v1/coupons/:id", h.DeleteCoupon)
		r.POST("/v1/coupons/validate", h.ValidateCoupon)
		return r, uc
	}

	t.Run("create defaults to active", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Coupon) (entities.Coupon, error) {
			if c.Status != entities.CouponActive {
				t.Fatalf("expected active status, got %q", c.Status)
			}
			c.ID = "1"
			return c, nil
		})

		w := serve(r, http.MethodPost, "/v1/coupons", `{"code":"NEWYEAR","type":"percentage","value":10}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update existing", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Coupon{ID: "1", Code: "NEWYEAR"}, nil)

		w := serve(r, http.MethodPost, "/v1/coupons", `{"id":"1","code":"NEWYEAR","type":"fixed","value":5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("code taken", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Coupon{}, usecase.ErrCouponCodeTaken)

		w := serve(r, http.MethodPost, "/v1/coupons", `{"code":"newyear","type":"fixed","value":5}`)
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusBadRequest || body["code"] != "COUPON_CODE_TAKEN" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("validate", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Validate(gomock.Any(), "RM50", 250.0).Return(entities.CouponDiscount{
			DiscountAmount: 50, CouponCode: "RM50", CouponType: entities.CouponFixed, CouponValue: 50,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/coupons/validate", `{"code":"RM50","cartTotal":250}`)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["valid"] != true || body["discountAmount"] != float64(50) {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("validate below minimum spend", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Validate(gomock.Any(), "RM50", 100.0).
			Return(entities.CouponDiscount{}, fmt.Errorf("%w: minimum spend of RM200 required", usecase.ErrCouponMinSpend))

		w := serve(r, http.MethodPost, "/v1/coupons/validate", `{"code":"RM50","cartTotal":100}`)
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusBadRequest || body["message"] != "Minimum spend of RM200 required" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("validate unknown code", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Validate(gomock.Any(), "NOPE", 100.0).Return(entities.CouponDiscount{}, usecase.ErrCouponInvalid)

		w := serve(r, http.MethodPost, "/v1/coupons/validate", `{"code":"NOPE","cartTotal":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Delete(gomock.Any(), "9").Return(usecase.ErrCouponNotFound)

		w := serve(r, http.MethodDelete, "/v1/coupons/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
