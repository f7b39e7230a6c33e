package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMiddleware_RequireUser_Success(t *testing.T) {
	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-User-ID", userID.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID uuid.UUID
	handler := NewIdentityMiddleware().RequireUser(func(c echo.Context) error {
		id, ok := UserID(c)
		require.True(t, ok)
		seenID = id

		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenID)
}

func TestIdentityMiddleware_RequireUser_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := NewIdentityMiddleware().RequireUser(func(c echo.Context) error {
		called = true

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "X-User-ID header is missing")
}

func TestIdentityMiddleware_RequireUser_MalformedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("X-User-ID", "not-a-uuid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewIdentityMiddleware().RequireUser(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user ID format")
}

func TestUserID_WithoutMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := UserID(c)

	assert.False(t, ok)
}
