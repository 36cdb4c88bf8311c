package model

// OrderItem is a cart line. PriceAtTime is the price snapshotted when the
// line was written; it never tracks later catalog price changes.
type OrderItem struct {
	ID          uint64  `gorm:"column:order_item_id;primaryKey;autoIncrement"`
	OrderID     uint64  `gorm:"column:order_id;index;not null"`
	ArtworkID   uint64  `gorm:"column:artwork_id;not null"`
	Quantity    uint    `gorm:"not null"`
	PriceAtTime float64 `gorm:"column:price_at_time;type:decimal(10,2);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
