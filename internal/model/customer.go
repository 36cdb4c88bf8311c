package model

import "time"

type Customer struct {
	ID           uint64    `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Address      string    `gorm:"size:255"`
	PhoneNumber  string    `gorm:"column:phone_number;size:20"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) Principal() *Principal {
	return &Principal{ID: c.ID, Name: c.Name, Email: c.Email, Kind: KindCustomer}
}
