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
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler exposes the order workflow: CRUD, column moves, proofs and issues.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	log     *zap.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, log: logger}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), actorFrom(c), payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrder(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveOrder moves one order to a column given by id or title.
func (h *OrderHandler) MoveOrder(c *gin.Context) {
	var payload request.MoveOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.MoveOrder(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

// BulkMove answers 200 with per-order outcomes even when some moves failed.
func (h *OrderHandler) BulkMove(c *gin.Context) {
	var payload request.BulkMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	outcomes, err := h.usecase.BulkMove(c.Request.Context(), actorFrom(c), payload.OrderIDs, payload.Status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	res := response.FromMoveOutcomes(outcomes)
	if res.Failed > 0 {
		h.log.Warn("[order][handler] bulk move partially failed",
			zap.Int("committed", res.Committed),
			zap.Int("failed", res.Failed))
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) UploadProof(c *gin.Context) {
	var payload request.ProofUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UploadProof(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ImageURL, payload.Comment)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, order)
}

// RespondToProof records the customer's answer on the latest pending proof.
func (h *OrderHandler) RespondToProof(c *gin.Context) {
	var payload request.ProofResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.RespondToProof(c.Request.Context(), c.Param("id"), *payload.Approved, payload.Reason)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RefiningFeedback(c *gin.Context) {
	id := c.Param("id")
	feedback, err := h.usecase.RefiningFeedback(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RefiningFeedbackResponse{OrderID: id, Feedback: feedback})
}

func (h *OrderHandler) ReportIssue(c *gin.Context) {
	var payload request.IssueReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ReportIssue(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Type, payload.Description)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ResolveIssue(c *gin.Context) {
	order, err := h.usecase.ResolveIssue(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, order)
}

// Board returns orders grouped by column, in column order.
func (h *OrderHandler) Board(c *gin.Context) {
	board, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, board)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderCustomer),
		errors.Is(err, usecase.ErrInvalidOrderPriority),
		errors.Is(err, usecase.ErrInvalidOrderTotal),
		errors.Is(err, usecase.ErrNoOrdersSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownWorkflowColumn):
		return pkg.NewDomainErrorSimple("UNKNOWN_COLUMN", "Unknown workflow column", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProofImageRequired):
		return pkg.NewDomainErrorSimple("INVALID_PROOF", "Proof image url is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRejectReasonRequired):
		return pkg.NewDomainErrorSimple("REASON_REQUIRED", "Please describe the changes you need", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIssueDescription), errors.Is(err, usecase.ErrInvalidIssueType):
		return pkg.NewDomainErrorSimple("INVALID_ISSUE", "Please provide an issue type and description", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingProof):
		return pkg.NewDomainErrorSimple("NO_PENDING_PROOF", "Order has no proof awaiting a response", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveIssue):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_ISSUE", "Order has no active issue", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
