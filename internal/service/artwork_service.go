package service

import (
	"context"
	"errors"
	"strings"

	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type ArtworkService interface {
	Create(ctx context.Context, artistID uint64, title, description string, price float64, imageURL *string) (*model.Artwork, error)
	Get(ctx context.Context, id uint64) (*repository.ArtworkRow, error)
	List(ctx context.Context) ([]repository.ArtworkRow, error)
}

type artworkService struct {
	repo repository.ArtworkRepository
}

func NewArtworkService(repo repository.ArtworkRepository) ArtworkService {
	return &artworkService{repo: repo}
}

func (s *artworkService) Create(ctx context.Context, artistID uint64, title, description string, price float64, imageURL *string) (*model.Artwork, error) {
	title = strings.TrimSpace(title)
	if title == "" || len(title) > 255 {
		return nil, errors.New("invalid title")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}
	artwork := &model.Artwork{
		Title:       title,
		Description: strings.TrimSpace(description),
		Price:       price,
		ArtistID:    artistID,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(ctx, artwork); err != nil {
		return nil, err
	}
	return artwork, nil
}

func (s *artworkService) Get(ctx context.Context, id uint64) (*repository.ArtworkRow, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *artworkService) List(ctx context.Context) ([]repository.ArtworkRow, error) {
	return s.repo.List(ctx)
}
