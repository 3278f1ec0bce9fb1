package infra

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Initialize loads .env into the process environment when the file exists.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found; using environment variables")
	}
}
