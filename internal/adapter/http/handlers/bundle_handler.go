package handlers

import (
	"errors"
	"net/http"

	request "printdesk/internal/adapter/http/dto/request"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase"
	"printdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBundlePayload = pkg.NewDomainErrorSimple("INVALID_BUNDLE_INPUT", "Please fill in required fields", http.StatusBadRequest)
	errInvalidBundleFilter  = pkg.NewDomainErrorSimple("INVALID_BUNDLE_STATUS", "Invalid bundle status", http.StatusBadRequest)
)

type BundleHandler struct {
	usecase usecase.IBundleUseCase
}

func NewBundleHandler(uc usecase.IBundleUseCase) *BundleHandler {
	return &BundleHandler{usecase: uc}
}

// ListBundles returns every bundle; ?status=active keeps only the ones the
// storefront shows.
func (h *BundleHandler) ListBundles(c *gin.Context) {
	activeOnly := false
	switch entities.BundleStatus(c.Query("status")) {
	case "":
	case entities.BundleActive:
		activeOnly = true
	default:
		c.JSON(errInvalidBundleFilter.HTTPStatus, errInvalidBundleFilter.ToHTTPError())
		return
	}

	bundles, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		appErr := mapBundleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, bundles)
}

func (h *BundleHandler) GetBundle(c *gin.Context) {
	b, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBundleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BundleHandler) CreateBundle(c *gin.Context) {
	var payload request.BundleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBundlePayload.HTTPStatus, errInvalidBundlePayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBundleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BundleHandler) DeleteBundle(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBundleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapBundleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBundleTitleRequired),
		errors.Is(err, usecase.ErrBundleSlugRequired),
		errors.Is(err, usecase.ErrInvalidBundlePrice):
		return errInvalidBundlePayload
	case errors.Is(err, usecase.ErrInvalidBundleID),
		errors.Is(err, usecase.ErrInvalidBundleStatus),
		errors.Is(err, usecase.ErrInvalidBundleItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBundleProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Bundle references an unknown product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBundleSlugTaken):
		return pkg.NewDomainErrorSimple("BUNDLE_SLUG_TAKEN", "Bundle slug already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBundleNotFound):
		return pkg.NewDomainErrorSimple("BUNDLE_NOT_FOUND", "Bundle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
