package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/picksart/backend/internal/config"
	"github.com/picksart/backend/internal/db"
	"github.com/picksart/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type seedArtist struct {
	Name           string
	Email          string
	Bio            string
	Specialization string
}

type seedArtwork struct {
	Title       string
	Description string
	Price       float64
	ArtistEmail string
	ImageURL    string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() (err error) {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(
		&model.Customer{},
		&model.Artist{},
		&model.Gallery{},
		&model.Artwork{},
		&model.Order{},
		&model.OrderItem{},
		&model.ShippingDetail{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("sql db: %w", err)
	}

	canSeed, err := shouldSeed(ctx, sqlDB)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("artworks already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	artistIDs := make(map[string]int64)
	for _, a := range buildSeedArtists() {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO artists (name, email, password_hash, bio, specialization) VALUES (?, ?, ?, ?, ?)",
			a.Name, a.Email, string(hash), a.Bio, a.Specialization)
		if err != nil {
			return fmt.Errorf("insert artist %s: %w", a.Email, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("artist id: %w", err)
		}
		artistIDs[a.Email] = id
	}

	for _, aw := range buildSeedArtworks() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO artworks (title, description, price, artist_id, image_url) VALUES (?, ?, ?, ?, ?)",
			aw.Title, aw.Description, aw.Price, artistIDs[aw.ArtistEmail], aw.ImageURL); err != nil {
			return fmt.Errorf("insert artwork %s: %w", aw.Title, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO customers (name, email, password_hash) VALUES (?, ?, ?)",
		"Demo Customer", "customer@example.com", string(hash)); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	log.Printf("seeded %d artists and %d artworks", len(artistIDs), len(buildSeedArtworks()))
	return nil
}

func shouldSeed(ctx context.Context, sqlDB *sql.DB) (bool, error) {
	if strings.EqualFold(os.Getenv("FORCE_SEED"), "true") {
		return true, nil
	}
	var n int64
	if err := sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM artworks").Scan(&n); err != nil {
		return false, fmt.Errorf("count artworks: %w", err)
	}
	return n == 0, nil
}

func buildSeedArtists() []seedArtist {
	return []seedArtist{
		{"Maya Lindqvist", "maya@picksart.example", "Oil painter working with nordic landscapes.", "Oil painting"},
		{"Tomas Rivera", "tomas@picksart.example", "Sculptor and mixed-media artist.", "Sculpture"},
		{"Aiko Tanaka", "aiko@picksart.example", "Watercolor miniatures and botanical studies.", "Watercolor"},
	}
}

func buildSeedArtworks() []seedArtwork {
	return []seedArtwork{
		{"Fjord at Dusk", "Oil on canvas, 60x80cm.", 450.00, "maya@picksart.example", "https://images.picksart.example/fjord-at-dusk.jpg"},
		{"Winter Birches", "Oil on canvas, 40x50cm.", 320.00, "maya@picksart.example", "https://images.picksart.example/winter-birches.jpg"},
		{"Bronze Wave", "Cast bronze, limited series of 5.", 1200.00, "tomas@picksart.example", "https://images.picksart.example/bronze-wave.jpg"},
		{"Paper Cranes", "Mixed media on panel.", 275.50, "tomas@picksart.example", "https://images.picksart.example/paper-cranes.jpg"},
		{"Moss Garden I", "Watercolor, 20x20cm.", 95.00, "aiko@picksart.example", "https://images.picksart.example/moss-garden-1.jpg"},
		{"Moss Garden II", "Watercolor, 20x20cm.", 95.00, "aiko@picksart.example", "https://images.picksart.example/moss-garden-2.jpg"},
	}
}
