package controllers

import (
	"errors"
	"net/http"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name     string   `json:"name" binding:"required"`
	SKU      string   `json:"sku" binding:"required"`
	Category string   `json:"category"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Cost     *float64 `json:"cost" binding:"required,gte=0"`
	Stock    int      `json:"stock" binding:"gte=0"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
}

// ProductResponse carries price/cost as plain numbers
type ProductResponse struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Category string   `json:"category"`
	Price    float64  `json:"price"`
	Cost     float64  `json:"cost"`
	Stock    int      `json:"stock"`
	Colors   []string `json:"colors"`
	Sizes    []string `json:"sizes"`
}

// GetProducts retrieves the product catalog
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Category: p.Category,
			Price:    p.Price.InexactFloat64(),
			Cost:     p.Cost.InexactFloat64(),
			Stock:    p.Stock,
			Colors:   p.Colors,
			Sizes:    p.Sizes,
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct adds a product to the catalog
func CreateProduct(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sku := utils.NormalizeSKU(input.SKU)
	if !utils.ValidateSKU(sku) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid SKU format")
		return
	}

	// SKUs are unique across the catalog
	var existing models.Product
	if err := config.DB.Where("sku = ?", sku).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Product with this SKU already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	product := models.Product{
		Name:     input.Name,
		SKU:      sku,
		Category: input.Category,
		Price:    decimal.NewFromFloat(*input.Price),
		Cost:     decimal.NewFromFloat(*input.Cost),
		Stock:    input.Stock,
		Colors:   models.StringList(input.Colors),
		Sizes:    models.StringList(input.Sizes),
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": product.ID, "message": "Produto criado com sucesso"})
}
