package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePrintInput defines the expected JSON structure for creating a print
type CreatePrintInput struct {
	Name      string   `json:"name" binding:"required"`
	Technique string   `json:"technique"`
	Colors    string   `json:"colors"`
	ImageURL  string   `json:"imageUrl"`
	ImageType string   `json:"imageType" binding:"omitempty,oneof=url local"`
	Tags      []string `json:"tags"`
}

// GetPrints retrieves the print catalog
func GetPrints(c *gin.Context) {
	var prints []models.Print
	if err := config.DB.Find(&prints).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch prints")
		return
	}

	c.JSON(http.StatusOK, prints)
}

// CreatePrint adds a print to the catalog
func CreatePrint(c *gin.Context) {
	var input CreatePrintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.Print{
		Name:      input.Name,
		Technique: input.Technique,
		Colors:    input.Colors,
		ImageURL:  input.ImageURL,
		ImageType: models.ImageTypeURL,
		Tags:      models.StringList(input.Tags),
	}
	if input.ImageType != "" {
		item.ImageType = input.ImageType
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create print")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "message": "Estampa criada com sucesso"})
}

// UploadPrintImage stores an uploaded artwork file and returns its URL
func UploadPrintImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nenhum arquivo enviado")
		return
	}
	if file.Filename == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Nome de arquivo inválido")
		return
	}

	filename := fmt.Sprintf("%s_%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		utils.SanitizeFilename(file.Filename))

	dir := filepath.Join(config.UploadDir(), "prints")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/prints/" + filename})
}
