package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/picksart/backend/internal/middleware"
	"github.com/picksart/backend/internal/service"
)

type ShippingHandler struct {
	svc service.OrderService
}

func NewShippingHandler(svc service.OrderService) *ShippingHandler {
	return &ShippingHandler{svc: svc}
}

type AddShippingRequest struct {
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type AddShippingResponse struct {
	Message         string          `json:"message"`
	ShippingID      uint64          `json:"shipping_id"`
	OrderID         uint64          `json:"order_id"`
	ShippingDetails ShippingFields  `json:"shipping_details"`
	Order           ReceiptResponse `json:"order"`
}

type ShippingFields struct {
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type ShippingDetailResponse struct {
	ShippingID  uint64 `json:"shipping_id"`
	OrderID     uint64 `json:"order_id"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at"`
}

func (h *ShippingHandler) Add(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	var req AddShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	receipt, err := h.svc.AddShipping(c.Request().Context(), p, req.Address, req.PhoneNumber)
	if err != nil {
		switch err {
		case service.ErrAddressRequired:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "address is required"))
		case service.ErrPhoneRequired:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "phone number is required"))
		case service.ErrNoPendingOrder:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "no pending order found"))
		default:
			c.Logger().Errorf("add shipping failed: %v", err)
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to add shipping information"))
		}
	}
	return c.JSON(http.StatusOK, AddShippingResponse{
		Message:    "shipping information added successfully",
		ShippingID: receipt.Shipping.ShippingID,
		OrderID:    receipt.OrderID,
		ShippingDetails: ShippingFields{
			Address:     receipt.Shipping.Address,
			PhoneNumber: receipt.Shipping.PhoneNumber,
		},
		Order: toReceiptResponse(receipt),
	})
}

func (h *ShippingHandler) Get(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid order id"))
	}
	shipping, err := h.svc.GetShipping(c.Request().Context(), p, orderID)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "no shipping information found for this order"))
		}
		c.Logger().Errorf("get shipping failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch shipping information"))
	}
	return c.JSON(http.StatusOK, ShippingDetailResponse{
		ShippingID:  shipping.ID,
		OrderID:     shipping.OrderID,
		Address:     shipping.Address,
		PhoneNumber: shipping.PhoneNumber,
		CreatedAt:   shipping.CreatedAt.Format(time.RFC3339),
	})
}
