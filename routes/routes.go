package routes

import (
	"estamparia-backend/config"
	"estamparia-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Uploaded print artwork
	r.Static("/uploads", config.UploadDir())

	api := r.Group("/api")
	{
		api.GET("/health", controllers.Health)

		// Client routes
		clients := api.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.POST("", controllers.CreateClient)
		}

		// Supplier routes
		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", controllers.GetSuppliers)
			suppliers.POST("", controllers.CreateSupplier)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.POST("", controllers.CreateProduct)
		}

		// Print routes
		prints := api.Group("/prints")
		{
			prints.GET("", controllers.GetPrints)
			prints.POST("", controllers.CreatePrint)
			prints.POST("/upload", controllers.UploadPrintImage)
		}

		// Quote routes
		quotes := api.Group("/quotes")
		{
			quotes.GET("", controllers.GetQuotes)
			quotes.POST("", controllers.CreateQuote)
			quotes.PUT("/:id/status", controllers.UpdateQuoteStatus)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.GET("", controllers.GetOrders)
			orders.GET("/kanban", controllers.GetOrdersKanban)
			orders.POST("", controllers.CreateOrder)
			orders.PUT("/:id/stage", controllers.UpdateOrderStage)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.GET("", controllers.GetTransactions)
			transactions.POST("", controllers.CreateTransaction)
		}

		// Dashboard routes
		api.GET("/dashboard/stats", controllers.GetDashboardStats)
	}

	return r
}
