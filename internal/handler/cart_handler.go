package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	appmw "github.com/picksart/backend/internal/middleware"
	"github.com/picksart/backend/internal/service"
)

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

type SyncCartRequest struct {
	Items []SyncCartItem `json:"items"`
}

type SyncCartItem struct {
	ArtworkID uint64  `json:"artwork_id"`
	Quantity  uint    `json:"quantity"`
	Price     float64 `json:"price"`
}

type SyncCartResponse struct {
	Message string `json:"message"`
	OrderID uint64 `json:"order_id"`
}

type CartItemResponse struct {
	ArtworkID  uint64  `json:"artwork_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   uint    `json:"quantity"`
	ImageURL   *string `json:"image_url"`
	ArtistName string  `json:"artist_name"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func (h *CartHandler) Sync(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	var req SyncCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	items := make([]service.CartItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.CartItemInput{
			ArtworkID: it.ArtworkID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	orderID, err := h.svc.Sync(c.Request().Context(), p.ID, items)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		c.Logger().Errorf("cart sync failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to sync cart"))
	}
	return c.JSON(http.StatusOK, SyncCartResponse{
		Message: "cart synced successfully",
		OrderID: orderID,
	})
}

func (h *CartHandler) Get(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	cart, err := h.svc.Get(c.Request().Context(), p.ID)
	if err != nil {
		c.Logger().Errorf("get cart failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch cart"))
	}
	resp := CartResponse{
		Items: make([]CartItemResponse, 0, len(cart.Items)),
		Total: cart.Total,
	}
	for _, it := range cart.Items {
		resp.Items = append(resp.Items, CartItemResponse{
			ArtworkID:  it.ArtworkID,
			Title:      it.Title,
			Price:      it.Price,
			Quantity:   it.Quantity,
			ImageURL:   it.ImageURL,
			ArtistName: it.ArtistName,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
