package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	appmw "github.com/picksart/backend/internal/middleware"
	"github.com/picksart/backend/internal/repository"
	"github.com/picksart/backend/internal/service"
)

type ArtworkHandler struct {
	svc service.ArtworkService
}

func NewArtworkHandler(svc service.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{svc: svc}
}

type ArtworkResponse struct {
	ArtworkID   uint64  `json:"artwork_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ArtistID    uint64  `json:"artist_id"`
	ArtistName  string  `json:"artist_name,omitempty"`
	ImageURL    *string `json:"image_url"`
	CreatedAt   string  `json:"created_at"`
}

type CreateArtworkRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
}

func toArtworkResponse(row *repository.ArtworkRow) ArtworkResponse {
	return ArtworkResponse{
		ArtworkID:   row.ID,
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price,
		ArtistID:    row.ArtistID,
		ArtistName:  row.ArtistName,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ArtworkHandler) Create(c echo.Context) error {
	p := appmw.PrincipalFrom(c)
	var req CreateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	artwork, err := h.svc.Create(c.Request().Context(), p.ID, req.Title, req.Description, req.Price, req.ImageURL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	return c.JSON(http.StatusCreated, ArtworkResponse{
		ArtworkID:   artwork.ID,
		Title:       artwork.Title,
		Description: artwork.Description,
		Price:       artwork.Price,
		ArtistID:    artwork.ArtistID,
		ImageURL:    artwork.ImageURL,
		CreatedAt:   artwork.CreatedAt.Format(time.RFC3339),
	})
}

func (h *ArtworkHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	row, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if err == service.ErrNotFound {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "artwork not found"))
		}
		c.Logger().Errorf("get artwork failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch artwork"))
	}
	return c.JSON(http.StatusOK, toArtworkResponse(row))
}

func (h *ArtworkHandler) List(c echo.Context) error {
	rows, err := h.svc.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list artworks failed: %v", err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch artworks"))
	}
	resp := make([]ArtworkResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toArtworkResponse(&rows[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
