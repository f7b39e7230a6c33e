package handler

import (
	"log/slog"
	"net/http"

	"mart/internal/delivery/http/middleware"
	"mart/internal/delivery/http/response"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon-related handlers: the user
// selection workflow and the administrative catalog surface.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

// SelectCoupon applies a coupon, by ID or code, to the caller's cart.
func (h *CouponHandler) SelectCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	var input *usecase.SelectCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon selection input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	applied, err := h.uc.SelectCoupon(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applied, "Coupon applied")
}

// UnselectCoupon removes the coupon from the caller's cart.
func (h *CouponHandler) UnselectCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	if err := h.uc.UnselectCoupon(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Coupon removed")
}

// GetSelectedCoupon returns the caller's current coupon selection.
func (h *CouponHandler) GetSelectedCoupon(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	selected, err := h.uc.GetSelectedCoupon(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, selected, "Selected coupon retrieved")
}

// CreateCoupon adds a coupon to the catalog.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// UpdateCoupon edits a catalog coupon.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	var input *usecase.CouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.UpdateCoupon(c.Request().Context(), couponID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon updated successfully")
}

// DeleteCoupon soft-deletes a catalog coupon.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	if err := h.uc.DeleteCoupon(c.Request().Context(), couponID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Coupon deleted successfully")
}

// GetCoupon retrieves one catalog coupon.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	coupon, err := h.uc.GetCoupon(c.Request().Context(), couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon retrieved successfully")
}

// ListCoupons retrieves the coupon catalog.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.uc.ListCoupons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}
