package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// Order is both the cart and the purchase record: a customer's pending
// order is their cart, and confirming it is terminal for that row. At most
// one pending order may exist per customer at a time.
type Order struct {
	ID          uint64      `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID  uint64      `gorm:"column:customer_id;index;not null"`
	Status      OrderStatus `gorm:"size:32;not null"`
	TotalAmount float64     `gorm:"column:total_amount;type:decimal(10,2);not null"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
