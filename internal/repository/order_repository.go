package repository

import (
	"context"
	"errors"
	"math"

	"github.com/picksart/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartItemRow is a cart line joined with the catalog fields the client
// renders (artwork title/image and artist name).
type CartItemRow struct {
	ArtworkID   uint64  `gorm:"column:artwork_id"`
	Title       string  `gorm:"column:title"`
	Quantity    uint    `gorm:"column:quantity"`
	PriceAtTime float64 `gorm:"column:price_at_time"`
	ImageURL    *string `gorm:"column:image_url"`
	ArtistName  string  `gorm:"column:artist_name"`
}

// OrderRepository owns the cart/order/shipping tables. Every mutating
// method runs as a single transaction and locks the customer's pending
// order row, so concurrent writers for one customer serialize and the
// one-pending-order invariant holds.
type OrderRepository interface {
	// SyncCart replaces the pending order's lines with items, creating the
	// order when absent, and recomputes the total. Items must carry
	// ArtworkID, Quantity and PriceAtTime; OrderID is assigned here.
	SyncCart(ctx context.Context, customerID uint64, items []model.OrderItem) (*model.Order, error)
	FindPending(ctx context.Context, customerID uint64) (*model.Order, error)
	FindByID(ctx context.Context, orderID uint64) (*model.Order, error)
	ItemsWithArtwork(ctx context.Context, orderID uint64) ([]CartItemRow, error)
	// Confirm transitions the pending order to confirmed. It returns
	// gorm.ErrRecordNotFound when no pending order exists or it has no
	// items.
	Confirm(ctx context.Context, customerID uint64) (*model.Order, []CartItemRow, error)
	// ConfirmWithShipping updates the customer's contact fields, upserts
	// the shipping record for the pending order and confirms it.
	ConfirmWithShipping(ctx context.Context, customerID uint64, address, phone string) (*model.Order, *model.ShippingDetail, []CartItemRow, error)
	LatestShipping(ctx context.Context, orderID uint64) (*model.ShippingDetail, error)
	ListConfirmed(ctx context.Context, customerID uint64) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// pendingForUpdate reads the customer's pending order under FOR UPDATE so
// two transactions cannot both observe "no pending order".
func pendingForUpdate(tx *gorm.DB, customerID uint64) (*model.Order, error) {
	var o model.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusPending).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) SyncCart(ctx context.Context, customerID uint64, items []model.OrderItem) (*model.Order, error) {
	var out *model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := pendingForUpdate(tx, customerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			order = &model.Order{CustomerID: customerID, Status: model.OrderStatusPending}
			if err := tx.Create(order).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}

		var total float64
		for i := range items {
			items[i].ID = 0
			items[i].OrderID = order.ID
			total += items[i].PriceAtTime * float64(items[i].Quantity)
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		total = round2(total)
		if err := tx.Model(&model.Order{}).Where("order_id = ?", order.ID).
			Update("total_amount", total).Error; err != nil {
			return err
		}
		order.TotalAmount = total
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepository) FindPending(ctx context.Context, customerID uint64) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusPending).
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) FindByID(ctx context.Context, orderID uint64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ItemsWithArtwork(ctx context.Context, orderID uint64) ([]CartItemRow, error) {
	return itemsWithArtwork(r.db.WithContext(ctx), orderID)
}

func itemsWithArtwork(tx *gorm.DB, orderID uint64) ([]CartItemRow, error) {
	var rows []CartItemRow
	err := tx.
		Table("order_items AS oi").
		Select("oi.artwork_id, oi.quantity, oi.price_at_time, a.title, a.image_url, ar.name AS artist_name").
		Joins("JOIN artworks a ON a.artwork_id = oi.artwork_id").
		Joins("JOIN artists ar ON ar.artist_id = a.artist_id").
		Where("oi.order_id = ?", orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) Confirm(ctx context.Context, customerID uint64) (*model.Order, []CartItemRow, error) {
	var (
		out   *model.Order
		items []CartItemRow
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := pendingForUpdate(tx, customerID)
		if err != nil {
			return err
		}
		items, err = itemsWithArtwork(tx, order.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			// an empty cart cannot be checked out
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&model.Order{}).Where("order_id = ?", order.ID).
			Update("status", model.OrderStatusConfirmed).Error; err != nil {
			return err
		}
		order.Status = model.OrderStatusConfirmed
		out = order
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, items, nil
}

func (r *orderRepository) ConfirmWithShipping(ctx context.Context, customerID uint64, address, phone string) (*model.Order, *model.ShippingDetail, []CartItemRow, error) {
	var (
		out      *model.Order
		shipping *model.ShippingDetail
		items    []CartItemRow
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Customer{}).Where("customer_id = ?", customerID).
			Updates(map[string]interface{}{"address": address, "phone_number": phone}).Error; err != nil {
			return err
		}

		order, err := pendingForUpdate(tx, customerID)
		if err != nil {
			return err
		}

		var existing model.ShippingDetail
		err = tx.Where("order_id = ?", order.ID).Order("created_at DESC").First(&existing).Error
		switch {
		case err == nil:
			existing.Address = address
			existing.PhoneNumber = phone
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			shipping = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			shipping = &model.ShippingDetail{OrderID: order.ID, Address: address, PhoneNumber: phone}
			if err := tx.Create(shipping).Error; err != nil {
				return err
			}
		default:
			return err
		}

		items, err = itemsWithArtwork(tx, order.ID)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Order{}).Where("order_id = ?", order.ID).
			Update("status", model.OrderStatusConfirmed).Error; err != nil {
			return err
		}
		order.Status = model.OrderStatusConfirmed
		out = order
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return out, shipping, items, nil
}

func (r *orderRepository) LatestShipping(ctx context.Context, orderID uint64) (*model.ShippingDetail, error) {
	var s model.ShippingDetail
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *orderRepository) ListConfirmed(ctx context.Context, customerID uint64) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, model.OrderStatusConfirmed).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
