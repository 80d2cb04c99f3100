package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Logger is the application-wide structured logger. Development encoding
// when APP_ENV=dev, JSON production encoding otherwise.
var Logger *zap.Logger

func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "dev" {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
}
