package middleware

import (
	"strings"

	"todo/internal/delivery/api/response"
	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests carrying a bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects the request unless the Authorization header holds a
// valid token, and exposes the token subject to handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Authorization header is missing")
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		subject, err := m.tokenSvc.Verify(strings.TrimSpace(token))
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithSubject(c.Request().Context(), subject)))

		return next(c)
	}
}
