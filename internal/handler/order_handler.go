package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/picksart/backend/internal/middleware"
	"github.com/picksart/backend/internal/service"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type ReceiptItemResponse struct {
	ArtworkID  uint64  `json:"artwork_id"`
	Title      string  `json:"title"`
	Quantity   uint    `json:"quantity"`
	Price      float64 `json:"price"`
	ImageURL   *string `json:"image_url"`
	ArtistName string  `json:"artist_name"`
}

type ReceiptResponse struct {
	OrderID      uint64                `json:"order_id"`
	TotalAmount  float64               `json:"total_amount"`
	Date         string                `json:"date"`
	Status       string                `json:"status"`
	CustomerName string                `json:"customer_name"`
	Items        []ReceiptItemResponse `json:"items"`
}

type CheckoutResponse struct {
	Message string          `json:"message"`
	Order   ReceiptResponse `json:"order"`
}

func toReceiptResponse(r *service.Receipt) ReceiptResponse {
	items := make([]ReceiptItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ReceiptItemResponse{
			ArtworkID:  it.ArtworkID,
			Title:      it.Title,
			Quantity:   it.Quantity,
			Price:      it.Price,
			ImageURL:   it.ImageURL,
			ArtistName: it.ArtistName,
		})
	}
	return ReceiptResponse{
		OrderID:      r.OrderID,
		TotalAmount:  r.TotalAmount,
		Date:         r.CreatedAt,
		Status:       string(r.Status),
		CustomerName: r.CustomerName,
		Items:        items,
	}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	receipt, err := h.svc.Checkout(c.Request().Context(), p)
	if err != nil {
		if err == service.ErrNoPendingOrder {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "no pending order found"))
		}
		c.Logger().Errorf("checkout failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "checkout failed"))
	}
	return c.JSON(http.StatusOK, CheckoutResponse{
		Message: "order placed successfully",
		Order:   toReceiptResponse(receipt),
	})
}

type OrderHistoryEntry struct {
	OrderID     uint64                `json:"order_id"`
	TotalAmount float64               `json:"total_amount"`
	Status      string                `json:"status"`
	Date        string                `json:"date"`
	Items       []ReceiptItemResponse `json:"items"`
}

type OrderHistoryResponse struct {
	Orders []OrderHistoryEntry `json:"orders"`
}

func (h *OrderHandler) List(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	list, err := h.svc.ListOrders(c.Request().Context(), p.ID)
	if err != nil {
		c.Logger().Errorf("list orders failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch orders"))
	}
	resp := OrderHistoryResponse{Orders: make([]OrderHistoryEntry, 0, len(list))}
	for _, co := range list {
		items := make([]ReceiptItemResponse, 0, len(co.Items))
		for _, it := range co.Items {
			items = append(items, ReceiptItemResponse{
				ArtworkID:  it.ArtworkID,
				Title:      it.Title,
				Quantity:   it.Quantity,
				Price:      it.Price,
				ImageURL:   it.ImageURL,
				ArtistName: it.ArtistName,
			})
		}
		resp.Orders = append(resp.Orders, OrderHistoryEntry{
			OrderID:     co.Order.ID,
			TotalAmount: co.Order.TotalAmount,
			Status:      string(co.Order.Status),
			Date:        co.Order.CreatedAt.Format(time.RFC3339),
			Items:       items,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
