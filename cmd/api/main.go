package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/maisonbelle/maisonbelle-api/internal/auth"
	"github.com/maisonbelle/maisonbelle-api/internal/config"
	"github.com/maisonbelle/maisonbelle-api/internal/database"
	"github.com/maisonbelle/maisonbelle-api/internal/handlers"
	"github.com/maisonbelle/maisonbelle-api/internal/routes"
	"github.com/maisonbelle/maisonbelle-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	db, err := database.OpenDB(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	tokens := auth.NewJWT(cfg.JWTSecret)

	app := handlers.New(store.New(db), tokens, cfg.UploadDir)
	router := routes.SetupRouter(app, tokens, cfg)

	log.Printf("Starting maisonbelle API server on %s...", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
