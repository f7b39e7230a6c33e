package handler

import (
	"log/slog"
	"net/http"

	"mart/internal/delivery/http/middleware"
	"mart/internal/delivery/http/response"
	"mart/internal/domain/entity"
	"mart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-book handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateAddress adds an address to the caller's address book.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	var input *usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress edits an address the caller owns.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	var input *usecase.UpdateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), userID, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress removes an address the caller owns.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// ListAddresses retrieves the caller's address book.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// SetAddressFlag makes the target the caller's only default or primary address.
func (h *AddressHandler) SetAddressFlag(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	addressID, flag, err := addressFlagParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	address, err := h.uc.SetAddressFlag(c.Request().Context(), userID, addressID, flag)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address flag set")
}

// UnsetAddressFlag clears the default or primary flag on the target address.
func (h *AddressHandler) UnsetAddressFlag(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_IDENTITY", "User identity is missing")
	}

	addressID, flag, err := addressFlagParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	address, err := h.uc.UnsetAddressFlag(c.Request().Context(), userID, addressID, flag)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address flag cleared")
}

func addressFlagParams(c echo.Context) (uuid.UUID, entity.AddressFlag, error) {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, "", errors.New("invalid address ID")
	}

	flag := entity.AddressFlag(c.Param("flag"))
	if !flag.Valid() {
		return uuid.Nil, "", errors.New("unknown address flag")
	}

	return addressID, flag, nil
}
