package model

import "time"

type Artwork struct {
	ID          uint64    `gorm:"column:artwork_id;primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	ArtistID    uint64    `gorm:"column:artist_id;index;not null"`
	ImageURL    *string   `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Artwork) TableName() string {
	return "artworks"
}
