package main

import (
	"log"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/handler"
	"github.com/inkwell/internal/router"
	"github.com/inkwell/internal/storage"
)

func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	blobs, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath)
	if err != nil {
		log.Fatalf("failed to initialize blob storage: %v", err)
	}

	api := handler.NewAPI(db.DB, blobs)
	r := router.Setup(api, cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
