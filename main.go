package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/sabron12/Sabron/internal/auth"
	"github.com/sabron12/Sabron/internal/config"
	"github.com/sabron12/Sabron/internal/db"
	"github.com/sabron12/Sabron/internal/gelf"
	"github.com/sabron12/Sabron/internal/handler"
	"github.com/sabron12/Sabron/internal/repository"
	"github.com/sabron12/Sabron/internal/router"
	"github.com/sabron12/Sabron/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr, "sabron-portal")
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// SQLite store; bootstraps tables and adds any missing optional columns.
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()
	log.Printf("Connected to SQLite database at %s", cfg.DBPath)

	storage, err := service.NewStorageService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload dir: %v", err)
	}

	// Repositories
	subRepo := repository.NewSubmissionRepo(database)
	blockRepo := repository.NewBlocklistRepo(database)

	// Services
	blockSvc := service.NewBlocklistService(blockRepo)
	if err := blockSvc.Load(); err != nil {
		log.Fatalf("Failed to load blocklist: %v", err)
	}
	subSvc := service.NewSubmissionService(subRepo, blockSvc)
	authSvc, err := service.NewAuthService(cfg.AdminUser, cfg.AdminPass)
	if err != nil {
		log.Fatalf("Failed to init auth: %v", err)
	}

	// Sessions and handlers
	sessions := auth.NewSessionManager(cfg.SessionSecret)
	authH := handler.NewAuthHandler(authSvc, sessions, cfg.JWTSecret)
	subH := handler.NewSubmissionHandler(subSvc, storage)
	adminH := handler.NewAdminHandler(subSvc, blockSvc)
	dlH := handler.NewDownloadHandler(storage)
	dashH := handler.NewDashboardHandler(subSvc, blockSvc)

	r := router.New(sessions, cfg.JWTSecret, authH, subH, adminH, dlH, dashH)

	log.Printf("Sabron portal server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
