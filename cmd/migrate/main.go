package main

import (
	"log"
	"os"

	"ai-chatdesk-be/internal/model"
	"ai-chatdesk-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "data/chatdesk.db"
	}

	// 2. Open the sqlite store
	db, err := database.NewSQLiteDB(path)
	if err != nil {
		color.Red("Error: Failed to open database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration (%s)...", path)

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.IndexedDocument{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Success: Database migration completed via GORM.")
}
