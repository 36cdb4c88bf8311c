package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/repository"
	"gorm.io/gorm"
)

// ErrInvalidItem marks client-side validation failures on submitted lines.
var ErrInvalidItem = errors.New("invalid cart item")

// CartItemInput is one submitted cart line; Price is snapshotted as the
// line's price_at_time.
type CartItemInput struct {
	ArtworkID uint64
	Quantity  uint
	Price     float64
}

type CartItem struct {
	ArtworkID  uint64
	Title      string
	Price      float64
	Quantity   uint
	ImageURL   *string
	ArtistName string
}

type Cart struct {
	Items []CartItem
	Total float64
}

// CartService maintains the customer's pending order. Sync has replace-all
// semantics: the cart after a successful sync exactly mirrors the submitted
// items, with no partial merge.
type CartService interface {
	Sync(ctx context.Context, customerID uint64, items []CartItemInput) (uint64, error)
	Get(ctx context.Context, customerID uint64) (*Cart, error)
}

type cartService struct {
	orders repository.OrderRepository
}

func NewCartService(orders repository.OrderRepository) CartService {
	return &cartService{orders: orders}
}

func (s *cartService) Sync(ctx context.Context, customerID uint64, items []CartItemInput) (uint64, error) {
	lines := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		if it.ArtworkID == 0 {
			return 0, fmt.Errorf("%w: artwork_id is required", ErrInvalidItem)
		}
		if it.Quantity == 0 {
			return 0, fmt.Errorf("%w: quantity must be positive", ErrInvalidItem)
		}
		if it.Price < 0 {
			return 0, fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
		}
		lines = append(lines, model.OrderItem{
			ArtworkID:   it.ArtworkID,
			Quantity:    it.Quantity,
			PriceAtTime: it.Price,
		})
	}
	order, err := s.orders.SyncCart(ctx, customerID, lines)
	if err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *cartService) Get(ctx context.Context, customerID uint64) (*Cart, error) {
	order, err := s.orders.FindPending(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no pending order means an empty cart, not an error
			return &Cart{Items: []CartItem{}}, nil
		}
		return nil, err
	}
	rows, err := s.orders.ItemsWithArtwork(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	cart := &Cart{
		Items: make([]CartItem, 0, len(rows)),
		Total: order.TotalAmount,
	}
	for _, row := range rows {
		cart.Items = append(cart.Items, CartItem{
			ArtworkID:  row.ArtworkID,
			Title:      row.Title,
			Price:      row.PriceAtTime,
			Quantity:   row.Quantity,
			ImageURL:   row.ImageURL,
			ArtistName: row.ArtistName,
		})
	}
	return cart, nil
}
