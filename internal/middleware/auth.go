package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/picksart/backend/internal/authctx"
	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/token"
	"gorm.io/gorm"
)

const principalKey = "principal"

// PrincipalResolver looks up the concrete row backing a (kind, id) claim.
type PrincipalResolver interface {
	Resolve(ctx context.Context, kind model.PrincipalKind, id uint64) (*model.Principal, error)
}

// AuthMiddleware is the gate every protected operation goes through: it
// verifies the bearer token, resolves the claims to a principal row and
// injects the identity into the request.
type AuthMiddleware struct {
	tokens     *token.Service
	principals PrincipalResolver
}

func NewAuthMiddleware(tokens *token.Service, principals PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, principals: principals}
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		if authz == "" {
			return unauthorized(c, "token_missing", "token is missing")
		}
		raw, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return unauthorized(c, "token_malformed", "invalid token format")
		}

		id, kind, err := m.tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				return unauthorized(c, "token_expired", "token has expired")
			case errors.Is(err, token.ErrRoleInvalid):
				return unauthorized(c, "role_invalid", "invalid user role")
			default:
				return unauthorized(c, "token_invalid", "invalid token")
			}
		}

		p, err := m.principals.Resolve(c.Request().Context(), kind, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "user_not_found", "user not found")
			}
			return c.JSON(http.StatusInternalServerError, errorBody("internal_error", "failed to resolve user"))
		}

		c.Set(principalKey, p)
		ctx := authctx.WithPrincipal(c.Request().Context(), p)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireCustomer enforces the cart/checkout authorization rule on top of
// an already resolved identity.
func (m *AuthMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(model.KindCustomer, "only customers can access this resource", next)
}

func (m *AuthMiddleware) RequireArtist(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireKind(model.KindArtist, "only artists can access this resource", next)
}

func (m *AuthMiddleware) requireKind(kind model.PrincipalKind, message string, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := PrincipalFrom(c)
		if p == nil {
			return unauthorized(c, "token_missing", "token is missing")
		}
		if p.Kind != kind {
			return c.JSON(http.StatusForbidden, errorBody("forbidden", message))
		}
		return next(c)
	}
}

// PrincipalFrom returns the identity set by RequireAuth, or nil.
func PrincipalFrom(c echo.Context) *model.Principal {
	p, _ := c.Get(principalKey).(*model.Principal)
	return p
}

func unauthorized(c echo.Context, code, message string) error {
	return c.JSON(http.StatusUnauthorized, errorBody(code, message))
}

func errorBody(code, message string) map[string]map[string]string {
	return map[string]map[string]string{
		"error": {"code": code, "message": message},
	}
}
