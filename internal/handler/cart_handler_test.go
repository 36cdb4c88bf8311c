package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartService struct {
	syncItems []service.CartItemInput
	syncErr   error
	cart      *service.Cart
	getErr    error
}

func (f *fakeCartService) Sync(_ context.Context, _ uint64, items []service.CartItemInput) (uint64, error) {
	f.syncItems = items
	if f.syncErr != nil {
		return 0, f.syncErr
	}
	return 31, nil
}

func (f *fakeCartService) Get(_ context.Context, _ uint64) (*service.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cart, nil
}

func newCartContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", &model.Principal{ID: 7, Name: "Ann", Kind: model.KindCustomer})
	return c, rec
}

func TestCartSyncRespondsWithOrderID(t *testing.T) {
	svc := &fakeCartService{}
	h := NewCartHandler(svc)

	body := `{"items":[{"artwork_id":3,"quantity":2,"price":10.5},{"artwork_id":4,"quantity":1,"price":24}]}`
	c, rec := newCartContext(http.MethodPost, body)
	require.NoError(t, h.Sync(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp SyncCartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(31), resp.OrderID)
	assert.Equal(t, "cart synced successfully", resp.Message)

	require.Len(t, svc.syncItems, 2)
	assert.Equal(t, uint64(3), svc.syncItems[0].ArtworkID)
	assert.Equal(t, 10.5, svc.syncItems[0].Price)
}

func TestCartSyncErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantErr  string
	}{
		{
			name:     "invalid json",
			body:     `{"items":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "bad_request",
		},
		{
			name:     "rejected item",
			body:     `{"items":[{"artwork_id":0,"quantity":1,"price":5}]}`,
			svcErr:   fmt.Errorf("%w: artwork_id is required", service.ErrInvalidItem),
			wantCode: http.StatusBadRequest,
			wantErr:  "bad_request",
		},
		{
			name:     "storage failure stays opaque",
			body:     `{"items":[]}`,
			svcErr:   fmt.Errorf("driver: bad connection"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "internal_error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCartHandler(&fakeCartService{syncErr: tt.svcErr})
			c, rec := newCartContext(http.MethodPost, tt.body)
			require.NoError(t, h.Sync(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp.Error.Code)
			if tt.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, resp.Error.Message, "driver")
			}
		})
	}
}

func TestCartGetRendersItems(t *testing.T) {
	img := "https://cdn.example.com/sunset.jpg"
	h := NewCartHandler(&fakeCartService{cart: &service.Cart{
		Items: []service.CartItem{
			{ArtworkID: 3, Title: "Sunset", Price: 10.5, Quantity: 2, ImageURL: &img, ArtistName: "Maya"},
		},
		Total: 21.0,
	}})
	c, rec := newCartContext(http.MethodGet, "")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 21.0, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Sunset", resp.Items[0].Title)
	assert.Equal(t, "Maya", resp.Items[0].ArtistName)
	require.NotNil(t, resp.Items[0].ImageURL)
	assert.Equal(t, img, *resp.Items[0].ImageURL)
}

func TestCartGetEmpty(t *testing.T) {
	h := NewCartHandler(&fakeCartService{cart: &service.Cart{Items: []service.CartItem{}}})
	c, rec := newCartContext(http.MethodGet, "")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
}
