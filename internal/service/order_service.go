package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoPendingOrder  = errors.New("no pending order found")
	ErrAddressRequired = errors.New("address is required")
	ErrPhoneRequired   = errors.New("phone number is required")
)

type ReceiptItem struct {
	ArtworkID  uint64
	Title      string
	Quantity   uint
	Price      float64
	ImageURL   *string
	ArtistName string
}

type ShippingInfo struct {
	ShippingID  uint64
	Address     string
	PhoneNumber string
}

// Receipt is the denormalized confirmation returned by both checkout
// paths; Shipping is set only on the shipping-triggered one.
type Receipt struct {
	OrderID      uint64
	TotalAmount  float64
	Status       model.OrderStatus
	CreatedAt    string
	CustomerName string
	Items        []ReceiptItem
	Shipping     *ShippingInfo
}

type ConfirmedOrder struct {
	Order model.Order
	Items []ReceiptItem
}

// OrderService confirms pending orders. Two paths exist, matching the
// shape of the system this replaces: direct checkout (no shipping data)
// and shipping submission; both are terminal for the order.
type OrderService interface {
	Checkout(ctx context.Context, customer *model.Principal) (*Receipt, error)
	AddShipping(ctx context.Context, customer *model.Principal, address, phone string) (*Receipt, error)
	GetShipping(ctx context.Context, caller *model.Principal, orderID uint64) (*model.ShippingDetail, error)
	ListOrders(ctx context.Context, customerID uint64) ([]ConfirmedOrder, error)
}

type orderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) Checkout(ctx context.Context, customer *model.Principal) (*Receipt, error) {
	order, items, err := s.orders.Confirm(ctx, customer.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingOrder
		}
		return nil, err
	}
	return buildReceipt(order, items, customer.Name, nil), nil
}

func (s *orderService) AddShipping(ctx context.Context, customer *model.Principal, address, phone string) (*Receipt, error) {
	address = strings.TrimSpace(address)
	phone = strings.TrimSpace(phone)
	if address == "" {
		return nil, ErrAddressRequired
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	order, shipping, items, err := s.orders.ConfirmWithShipping(ctx, customer.ID, address, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingOrder
		}
		return nil, err
	}
	info := &ShippingInfo{
		ShippingID:  shipping.ID,
		Address:     shipping.Address,
		PhoneNumber: shipping.PhoneNumber,
	}
	return buildReceipt(order, items, customer.Name, info), nil
}

// GetShipping returns the latest shipping record for an order the caller
// owns. Anyone authenticated may ask; a non-owner gets not-found rather
// than a hint the order exists.
func (s *orderService) GetShipping(ctx context.Context, caller *model.Principal, orderID uint64) (*model.ShippingDetail, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if caller.Kind != model.KindCustomer || order.CustomerID != caller.ID {
		return nil, ErrNotFound
	}
	shipping, err := s.orders.LatestShipping(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shipping, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID uint64) ([]ConfirmedOrder, error) {
	orders, err := s.orders.ListConfirmed(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]ConfirmedOrder, 0, len(orders))
	for _, o := range orders {
		rows, err := s.orders.ItemsWithArtwork(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ConfirmedOrder{Order: o, Items: toReceiptItems(rows)})
	}
	return out, nil
}

func toReceiptItems(rows []repository.CartItemRow) []ReceiptItem {
	items := make([]ReceiptItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ReceiptItem{
			ArtworkID:  row.ArtworkID,
			Title:      row.Title,
			Quantity:   row.Quantity,
			Price:      row.PriceAtTime,
			ImageURL:   row.ImageURL,
			ArtistName: row.ArtistName,
		})
	}
	return items
}

func buildReceipt(order *model.Order, rows []repository.CartItemRow, customerName string, shipping *ShippingInfo) *Receipt {
	return &Receipt{
		OrderID:      order.ID,
		TotalAmount:  order.TotalAmount,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
		CustomerName: customerName,
		Items:        toReceiptItems(rows),
		Shipping:     shipping,
	}
}
