package repository

import (
	"context"

	"github.com/picksart/backend/internal/model"
	"gorm.io/gorm"
)

// ArtworkRow is an artwork joined with its artist's public fields.
type ArtworkRow struct {
	model.Artwork
	ArtistName  string `gorm:"column:artist_name"`
	ArtistEmail string `gorm:"column:artist_email"`
}

type ArtworkRepository interface {
	Create(ctx context.Context, a *model.Artwork) error
	FindByID(ctx context.Context, id uint64) (*ArtworkRow, error)
	List(ctx context.Context) ([]ArtworkRow, error)
}

type artworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, a *model.Artwork) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *artworkRepository) FindByID(ctx context.Context, id uint64) (*ArtworkRow, error) {
	var row ArtworkRow
	err := r.db.WithContext(ctx).
		Table("artworks AS a").
		Select("a.*, ar.name AS artist_name, ar.email AS artist_email").
		Joins("LEFT JOIN artists ar ON ar.artist_id = a.artist_id").
		Where("a.artwork_id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *artworkRepository) List(ctx context.Context) ([]ArtworkRow, error) {
	var rows []ArtworkRow
	err := r.db.WithContext(ctx).
		Table("artworks AS a").
		Select("a.*, ar.name AS artist_name, ar.email AS artist_email").
		Joins("LEFT JOIN artists ar ON ar.artist_id = a.artist_id").
		Order("a.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
