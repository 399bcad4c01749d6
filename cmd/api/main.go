package main

import (
	"context"
	"log"
	"os"

	"cinos/internal/auth"
	"cinos/internal/db"
	"cinos/internal/metrics"
	"cinos/internal/order"
	"cinos/internal/router"
	"cinos/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	backend := os.Getenv("ORDERS_BACKEND")
	if backend == "" {
		backend = "postgres"
	}

	// ───────────────────────── REPOSITORIES ─────────────────────────
	var (
		userRepo  auth.UserRepository
		orderRepo order.Repository
	)

	switch backend {
	case "memory":
		log.Println("Using in-memory repositories")
		userRepo = auth.NewInMemoryUserRepository()
		orderRepo = order.NewInMemoryRepository()
	case "postgres":
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		userRepo = auth.NewPostgresUserRepository(pgDB)
		orderRepo = order.NewPostgresRepository(pgDB)
	default:
		log.Fatalf("❌ Unknown ORDERS_BACKEND: %s", backend)
	}

	// ───────────────────────── RECEIPT ARCHIVE ─────────────────────────
	var archiver order.Archiver
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archiver = r2Client
		log.Println("Receipt archival enabled")
	}

	// ───────────────────────── WIRING ─────────────────────────
	authHandler := auth.NewHandler(auth.NewService(userRepo))
	orderHandler := order.NewHandler(order.NewService(orderRepo), archiver)
	serverMetrics := metrics.NewServerMetrics("api")

	r := router.New(authHandler, orderHandler, serverMetrics)

	// ───────────────────────── SERVE ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
