package handlers

import (
	"errors"
	"net/http"

	request "printdesk/internal/adapter/http/dto/request"
	"printdesk/internal/usecase"
	"printdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidColumnPayload = pkg.NewDomainErrorSimple("INVALID_COLUMN_INPUT", "Invalid column payload", http.StatusBadRequest)
)

// ColumnHandler manages the workflow board layout.
type ColumnHandler struct {
	usecase usecase.IColumnUseCase
}

func NewColumnHandler(uc usecase.IColumnUseCase) *ColumnHandler {
	return &ColumnHandler{usecase: uc}
}

func (h *ColumnHandler) ListColumns(c *gin.Context) {
	cols, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapColumnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cols)
}

// SaveColumns replaces the board. The request order is the display order.
func (h *ColumnHandler) SaveColumns(c *gin.Context) {
	var payload request.SaveColumnsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidColumnPayload.HTTPStatus, errInvalidColumnPayload.ToHTTPError())
		return
	}

	cols, err := h.usecase.Save(c.Request.Context(), payload.ToEntities())
	if err != nil {
		appErr := mapColumnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cols)
}

func (h *ColumnHandler) AddColumn(c *gin.Context) {
	var payload request.ColumnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidColumnPayload.HTTPStatus, errInvalidColumnPayload.ToHTTPError())
		return
	}

	col, err := h.usecase.Add(c.Request.Context(), payload.Title, payload.Color, payload.Subtitle)
	if err != nil {
		appErr := mapColumnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *ColumnHandler) RenameColumn(c *gin.Context) {
	var payload request.RenameColumnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidColumnPayload.HTTPStatus, errInvalidColumnPayload.ToHTTPError())
		return
	}

	col, err := h.usecase.Rename(c.Request.Context(), c.Param("id"), payload.Title)
	if err != nil {
		appErr := mapColumnError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, col)
}

func mapColumnError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidColumnID), errors.Is(err, usecase.ErrInvalidColumnTitle), errors.Is(err, usecase.ErrEmptyBoard):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateColumnID), errors.Is(err, usecase.ErrDuplicateColumnTitle):
		return pkg.NewDomainErrorSimple("DUPLICATE_COLUMN", "Column ids and titles must be unique", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrColumnNotFound):
		return pkg.NewDomainErrorSimple("COLUMN_NOT_FOUND", "Column not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
