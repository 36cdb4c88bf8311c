package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeResolver struct {
	principal *model.Principal
	err       error
	calls     int
	lastKind  model.PrincipalKind
	lastID    uint64
}

func (f *fakeResolver) Resolve(_ context.Context, kind model.PrincipalKind, id uint64) (*model.Principal, error) {
	f.calls++
	f.lastKind = kind
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.principal, nil
}

func newTestGate(resolver *fakeResolver) (*AuthMiddleware, *token.Service) {
	tokens := token.NewService("test-secret", time.Hour)
	return NewAuthMiddleware(tokens, resolver), tokens
}

func performRequest(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, *model.Principal) {
	t.Helper()
	e := echo.New()
	var seen *model.Principal
	h := mw(func(c echo.Context) error {
		seen = PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	err := h(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec, seen
}

func TestRequireAuthResolvesPrincipal(t *testing.T) {
	resolver := &fakeResolver{principal: &model.Principal{ID: 9, Name: "Ann", Email: "ann@example.com", Kind: model.KindCustomer}}
	gate, tokens := newTestGate(resolver)

	raw, err := tokens.Issue(9, model.KindCustomer)
	require.NoError(t, err)

	rec, seen := performRequest(t, gate.RequireAuth, "Bearer "+raw)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, uint64(9), seen.ID)
	assert.Equal(t, model.KindCustomer, seen.Kind)
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, model.KindCustomer, resolver.lastKind)
	assert.Equal(t, uint64(9), resolver.lastID)
}

func TestRequireAuthRejectsBeforeLookup(t *testing.T) {
	expired, err := token.NewService("test-secret", -time.Hour).Issue(1, model.KindCustomer)
	require.NoError(t, err)
	foreign, err := token.NewService("other-secret", time.Hour).Issue(1, model.KindCustomer)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"missing header", "", "token_missing"},
		{"no bearer prefix", "Token abc", "token_malformed"},
		{"empty token", "Bearer ", "token_malformed"},
		{"garbage", "Bearer not.a.token", "token_invalid"},
		{"expired", "Bearer " + expired, "token_expired"},
		{"wrong secret", "Bearer " + foreign, "token_invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{}
			gate, _ := newTestGate(resolver)

			rec, seen := performRequest(t, gate.RequireAuth, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Nil(t, seen)
			// the gate must reject before any data access
			assert.Zero(t, resolver.calls)
		})
	}
}

func TestRequireAuthUnknownPrincipal(t *testing.T) {
	resolver := &fakeResolver{err: gorm.ErrRecordNotFound}
	gate, tokens := newTestGate(resolver)

	raw, err := tokens.Issue(404, model.KindArtist)
	require.NoError(t, err)

	rec, seen := performRequest(t, gate.RequireAuth, "Bearer "+raw)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "user_not_found")
	assert.Nil(t, seen)
}

func TestRequireCustomer(t *testing.T) {
	tests := []struct {
		name     string
		kind     model.PrincipalKind
		wantCode int
	}{
		{"customer passes", model.KindCustomer, http.StatusOK},
		{"artist forbidden", model.KindArtist, http.StatusForbidden},
		{"gallery forbidden", model.KindGallery, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{principal: &model.Principal{ID: 1, Kind: tt.kind}}
			gate, tokens := newTestGate(resolver)

			raw, err := tokens.Issue(1, tt.kind)
			require.NoError(t, err)

			chained := func(next echo.HandlerFunc) echo.HandlerFunc {
				return gate.RequireAuth(gate.RequireCustomer(next))
			}
			rec, _ := performRequest(t, chained, "Bearer "+raw)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
