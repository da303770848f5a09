package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "printdesk/internal/adapter/http/dto/request"
	response "printdesk/internal/adapter/http/dto/response"
	"printdesk/internal/usecase"
	"printdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)
)

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, coupons)
}

// SaveCoupon creates a coupon, or updates it when the payload carries an id.
func (h *CouponHandler) SaveCoupon(c *gin.Context) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if strings.TrimSpace(payload.ID) != "" {
		status = http.StatusOK
	}
	coupon, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, coupon)
}

func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ValidateCoupon checks a code against a cart total and returns the discount.
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var payload request.CouponValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	discount, err := h.usecase.Validate(c.Request.Context(), payload.Code, payload.CartTotal)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CouponValidationResponse{Valid: true, CouponDiscount: discount})
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCouponMinSpend):
		msg := err.Error()
		if i := strings.Index(msg, ": "); i >= 0 {
			msg = msg[i+2:]
		}
		return pkg.NewDomainError("COUPON_MIN_SPEND", strings.ToUpper(msg[:1])+msg[1:], err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponInvalid):
		return pkg.NewDomainErrorSimple("COUPON_INVALID", "Invalid or inactive coupon code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponCodeRequired),
		errors.Is(err, usecase.ErrInvalidCouponID),
		errors.Is(err, usecase.ErrInvalidCouponType),
		errors.Is(err, usecase.ErrInvalidCouponValue),
		errors.Is(err, usecase.ErrInvalidCouponStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponCodeTaken):
		return pkg.NewDomainErrorSimple("COUPON_CODE_TAKEN", "Coupon code already exists", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
