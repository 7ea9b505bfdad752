package controllers

import (
	"net/http"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateSupplierInput defines the expected JSON structure for creating a supplier
type CreateSupplierInput struct {
	Name               string `json:"name" binding:"required"`
	Contact            string `json:"contact"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Category           string `json:"category"`
	Status             string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
	Rating             *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	ProductionTimeDays *int   `json:"productionTimeDays" binding:"omitempty,min=0"`
}

// GetSuppliers retrieves all suppliers
func GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Find(&suppliers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch suppliers")
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

// CreateSupplier registers a new supplier
func CreateSupplier(c *gin.Context) {
	var input CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	supplier := models.Supplier{
		Name:               input.Name,
		Contact:            input.Contact,
		Email:              input.Email,
		Phone:              input.Phone,
		Category:           input.Category,
		Status:             models.SupplierStatusAtivo,
		Rating:             5,
		ProductionTimeDays: 7,
	}

	if input.Status != "" {
		supplier.Status = input.Status
	}
	if input.Rating != nil {
		supplier.Rating = *input.Rating
	}
	if input.ProductionTimeDays != nil {
		supplier.ProductionTimeDays = *input.ProductionTimeDays
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create supplier")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": supplier.ID, "message": "Fornecedor criado com sucesso"})
}
