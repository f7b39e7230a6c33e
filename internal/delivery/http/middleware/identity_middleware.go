package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated user's identity, injected by the
// API gateway in front of this service.
const userIDHeader = "X-User-ID"

// userIDContextKey is the echo context key the handlers read.
const userIDContextKey = "userID"

// IdentityMiddleware resolves the caller's user ID from the gateway header.
// Every cart, coupon-selection and address route is scoped to this identity.
type IdentityMiddleware struct{}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireUser rejects requests without a well-formed user ID header and
// stores the parsed ID in the echo context for the handlers.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		headerValue := c.Request().Header.Get(userIDHeader)
		if headerValue == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "X-User-ID header is missing"})
		}

		userID, err := uuid.Parse(headerValue)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format"})
		}

		c.Set(userIDContextKey, userID)

		return next(c)
	}
}

// UserID extracts the authenticated user's ID from the echo context. The
// second return is false when the identity middleware did not run.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}
