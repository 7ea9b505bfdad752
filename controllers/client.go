package controllers

import (
	"net/http"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetClients retrieves all registered clients
func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// CreateClient registers a new client
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	client := models.Client{
		Name:    input.Name,
		Contact: input.Contact,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": client.ID, "message": "Cliente criado com sucesso"})
}
