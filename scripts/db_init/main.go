package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/askhub/db"
	"github.com/garnizeh/askhub/internal/config"
	"github.com/garnizeh/askhub/internal/db"
	"github.com/garnizeh/askhub/internal/repository/sqlite"
	"github.com/garnizeh/askhub/pkg/models"
)

// Initializes the database and, with ASKHUB_SEED_DEMO=1, seeds a demo company
// with AI answering enabled.
func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("ASKHUB_SEED_DEMO") == "1" {
		repo := sqlite.New(database, nil)
		company := models.Company{Name: "Demo Co", AIAnswerEnabled: true}
		if _, err := repo.CreateCompany(ctx, &company); err != nil {
			fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded demo company %s\n", company.ID)
	}

	fmt.Println("Database initialized successfully.")
}
