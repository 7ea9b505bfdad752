package controllers

import (
	"errors"
	"net/http"
	"time"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/services"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateQuoteInput defines the expected JSON structure for creating a quote
type CreateQuoteInput struct {
	ClientID     *uint    `json:"clientId"`
	LeadName     string   `json:"leadName"`
	LeadContact  string   `json:"leadContact"`
	ItemsSummary string   `json:"itemsSummary" binding:"required"`
	TotalValue   *float64 `json:"totalValue" binding:"required,gte=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=Rascunho Pendente Enviada Aprovada Rejeitada"`
}

// UpdateQuoteStatusInput defines the body of a quote status change
type UpdateQuoteStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Rascunho Pendente Enviada Aprovada Rejeitada"`
}

// QuoteResponse resolves the client reference for display
type QuoteResponse struct {
	ID           uint    `json:"id"`
	QuoteNumber  string  `json:"quoteNumber"`
	ClientID     *uint   `json:"clientId"`
	ClientName   string  `json:"clientName"`
	Contact      string  `json:"contact"`
	ItemsSummary string  `json:"itemsSummary"`
	TotalValue   float64 `json:"totalValue"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
}

// GetQuotes retrieves all quotes with the client reference resolved. A linked
// client wins over the inline lead fields for display.
func GetQuotes(c *gin.Context) {
	var quotes []models.Quote
	if err := config.DB.Preload("Client").Find(&quotes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch quotes")
		return
	}

	response := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		clientName := q.LeadName
		contact := q.LeadContact
		if q.Client != nil {
			clientName = q.Client.Name
			contact = q.Client.Contact
		}
		response = append(response, QuoteResponse{
			ID:           q.ID,
			QuoteNumber:  q.QuoteNumber,
			ClientID:     q.ClientID,
			ClientName:   clientName,
			Contact:      contact,
			ItemsSummary: q.ItemsSummary,
			TotalValue:   q.TotalValue.InexactFloat64(),
			Status:       q.Status,
			Date:         utils.FormatDateBR(q.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreateQuote registers a new quote and mints its number
func CreateQuote(c *gin.Context) {
	var input CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// A quote needs someone to belong to: a registered client or a lead
	if input.ClientID == nil && input.LeadName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Either clientId or leadName is required")
		return
	}

	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.First(&client, *input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	quote := models.Quote{
		ClientID:     input.ClientID,
		LeadName:     input.LeadName,
		LeadContact:  input.LeadContact,
		ItemsSummary: input.ItemsSummary,
		TotalValue:   decimal.NewFromFloat(*input.TotalValue),
		Status:       models.QuoteStatusRascunho,
	}
	if input.Status != "" {
		quote.Status = input.Status
	}

	// Number and record are written in one transaction: a failed insert rolls
	// the sequence increment back, so no number is burned without a quote.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := services.NextSequence(tx, services.SeqQuotes)
		if err != nil {
			return err
		}
		quote.QuoteNumber = services.QuoteNumber(time.Now().Year(), seq)
		return tx.Create(&quote).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create quote")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          quote.ID,
		"quoteNumber": quote.QuoteNumber,
		"message":     "Cotação criada com sucesso",
	})
}

// UpdateQuoteStatus changes a quote's status (Rascunho, Pendente, Enviada,
// Aprovada, Rejeitada)
func UpdateQuoteStatus(c *gin.Context) {
	var input UpdateQuoteStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var quote models.Quote
	if err := config.DB.First(&quote, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	quote.Status = input.Status
	if err := config.DB.Save(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": quote.ID, "status": quote.Status, "message": "Cotação atualizada com sucesso"})
}
