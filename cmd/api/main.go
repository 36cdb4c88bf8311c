package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/picksart/backend/internal/config"
	"github.com/picksart/backend/internal/db"
	"github.com/picksart/backend/internal/model"
	"github.com/picksart/backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			log.Printf("db close error: %v", err)
		}
	}()

	if err := conn.AutoMigrate(
		&model.Customer{},
		&model.Artist{},
		&model.Gallery{},
		&model.Artwork{},
		&model.Order{},
		&model.OrderItem{},
		&model.ShippingDetail{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn, cfg)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
