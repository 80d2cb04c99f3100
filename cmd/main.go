package main

import (
	"os"

	"github.com/Alexeya-png/fitness-tracker/config"
	"github.com/Alexeya-png/fitness-tracker/routes"
)

func main() {
	config.InitDB()
	config.InitLogger()
	defer config.Logger.Sync()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
