package model

import "time"

type ShippingDetail struct {
	ID          uint64    `gorm:"column:shipping_id;primaryKey;autoIncrement"`
	OrderID     uint64    `gorm:"column:order_id;index;not null"`
	Address     string    `gorm:"size:255;not null"`
	PhoneNumber string    `gorm:"column:phone_number;size:20;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (ShippingDetail) TableName() string {
	return "shipping_details"
}
