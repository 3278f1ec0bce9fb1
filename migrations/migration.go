package main

import (
	"gin-giftregistry/app"
	"gin-giftregistry/infra"

	"github.com/sirupsen/logrus"
)

// Creates the schema and the admin account without starting the server.
func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := infra.NewLogger(cfg)

	db, err := infra.SetupDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	if err := app.New(cfg, db, log).Bootstrap(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Info("Database migrated")
}
