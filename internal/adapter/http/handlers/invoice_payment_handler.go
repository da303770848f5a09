package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	response "printdesk/internal/adapter/http/dto/response"
	"printdesk/internal/usecase"
	"printdesk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoicePaymentHandler handles HTTP requests for invoice payments.
type InvoicePaymentHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool, logger *zap.Logger) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc, mockMode: mockMode, log: logger}
}

// PayInvoice charges the invoice total through the payment provider and marks
// the invoice paid.
func (h *InvoicePaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	h.log.Info("[payment][handler] create start", zap.String("invoice_id", invoiceID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			h.log.Warn("[payment][handler] payload invalid in mock mode; fallback to empty payload",
				zap.String("invoice_id", invoiceID),
				zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			h.log.Warn("[payment][handler] invalid payload", zap.String("invoice_id", invoiceID), zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[payment][handler] create success",
		zap.String("invoice_id", invoiceID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// ListInvoicePayments returns every payment recorded against an invoice, newest first.
func (h *InvoicePaymentHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID := c.Param("id")

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.log.Warn("[payment][handler] list failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromInvoicePayments(payments)
	sort.SliceStable(res, func(i, j int) bool { return res[i].PaymentDate.After(res[j].PaymentDate) })
	c.JSON(http.StatusOK, res)
}

func (h *InvoicePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapInvoicePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(p))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare provider body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
