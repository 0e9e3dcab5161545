package main

import (
	"context"
	"log"

	"ai-chatdesk-be/internal/bootstrap"
	"ai-chatdesk-be/internal/config"
	"ai-chatdesk-be/internal/server"
	"ai-chatdesk-be/internal/tracer"
	"ai-chatdesk-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional, empty DB_PATH keeps everything in memory)
	var gormDB *gorm.DB
	if cfg.Database.Path != "" {
		db, err := database.NewSQLiteDB(cfg.Database.Path)
		if err != nil {
			log.Panicf("Unable to open sqlite DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Stream Handler...")
		if err := container.StreamHandler.Run(context.Background()); err != nil {
			log.Printf("Background Stream Handler Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
