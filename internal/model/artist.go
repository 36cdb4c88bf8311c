package model

import "time"

type Artist struct {
	ID             uint64    `gorm:"column:artist_id;primaryKey;autoIncrement"`
	Name           string    `gorm:"size:255;not null"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash   string    `gorm:"column:password_hash;size:255;not null"`
	Bio            string    `gorm:"type:text"`
	Specialization string    `gorm:"size:255"`
	ImageURL       *string   `gorm:"size:255"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) Principal() *Principal {
	return &Principal{ID: a.ID, Name: a.Name, Email: a.Email, Kind: KindArtist}
}
