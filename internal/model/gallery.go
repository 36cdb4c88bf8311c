package model

import "time"

type Gallery struct {
	ID           uint64    `gorm:"column:gallery_id;primaryKey;autoIncrement"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Description  string    `gorm:"type:text"`
	Location     string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Gallery) TableName() string {
	return "galleries"
}

func (g *Gallery) Principal() *Principal {
	return &Principal{ID: g.ID, Name: g.Name, Email: g.Email, Kind: KindGallery}
}
