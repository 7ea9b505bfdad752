package main

import (
	"fmt"
	"log"
	"os"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/routes"
	"estamparia-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Client{},
		&models.Supplier{},
		&models.Product{},
		&models.Print{},
		&models.Quote{},
		&models.Order{},
		&models.Transaction{},
		&models.Sequence{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	scheduler := services.NewScheduleService(config.DB)
	scheduler.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
