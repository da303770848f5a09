package handlers

import (
	"errors"
	"net/http"

	request "printdesk/internal/adapter/http/dto/request"
	response "printdesk/internal/adapter/http/dto/response"
	"printdesk/internal/usecase"
	"printdesk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, log: logger}
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ConvertToOrders creates one production order per invoice line.
func (h *InvoiceHandler) ConvertToOrders(c *gin.Context) {
	id := c.Param("id")
	actor := actorFrom(c)
	orders, err := h.usecase.ConvertToOrders(c.Request.Context(), actor, id)
	if err != nil {
		h.log.Warn("[invoice][handler] convert to orders failed", zap.String("invoice_id", id), zap.Error(err))
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[invoice][handler] converted to orders",
		zap.String("invoice_id", id),
		zap.Int("orders", len(orders)),
		zap.String("actor", actor.Name))
	c.JSON(http.StatusCreated, response.ConvertToOrdersResponse{InvoiceID: id, Orders: orders})
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrItemsRequired),
		errors.Is(err, usecase.ErrInvalidItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyExists):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_EXISTS", "Invoice already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyConverted):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_CONVERTED", "Invoice has already been converted to orders", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "An order for this invoice already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
