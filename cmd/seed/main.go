// cmd/seed/main.go
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/sanatevi/storefront-api/internal/config"
	"github.com/sanatevi/storefront-api/internal/database"
)

// Loads the sample catalog into the configured database. Existing
// catalog rows are replaced.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	if err := database.SeedCatalog(db); err != nil {
		logrus.Fatal("Failed to seed catalog: ", err)
	}

	logrus.Info("Catalog seeded")
}
