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

// CreateTransactionInput defines the expected JSON structure for creating a
// transaction. Amount is a magnitude; the direction comes from Type.
type CreateTransactionInput struct {
	OrderID     *uint    `json:"orderId"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category"`
	Type        string   `json:"type" binding:"required,oneof=income expense"`
	Amount      *float64 `json:"amount" binding:"required,gt=0"`
	Status      string   `json:"status" binding:"omitempty,oneof=Pendente Confirmado Agendado"`
	Date        string   `json:"date"`
}

// TransactionResponse formats the transaction date for display
type TransactionResponse struct {
	ID                uint    `json:"id"`
	TransactionNumber string  `json:"transactionNumber"`
	OrderID           *uint   `json:"orderId"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Type              string  `json:"type"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	Date              string  `json:"date"`
}

// GetTransactions retrieves the ledger, newest first
func GetTransactions(c *gin.Context) {
	var transactions []models.Transaction
	if err := config.DB.Order("transaction_date DESC, id DESC").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		response = append(response, TransactionResponse{
			ID:                t.ID,
			TransactionNumber: t.TransactionNumber,
			OrderID:           t.OrderID,
			Description:       t.Description,
			Category:          t.Category,
			Type:              t.Type,
			Amount:            t.Amount.InexactFloat64(),
			Status:            t.Status,
			Date:              utils.FormatDateBR(t.TransactionDate),
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreateTransaction records a ledger entry and mints its number
func CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.OrderID != nil {
		var order models.Order
		if err := config.DB.First(&order, *input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Order not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	transactionDate := utils.BeginningOfDay(time.Now())
	if input.Date != "" {
		parsed, err := utils.ParseDateOnly(input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-mm-dd")
			return
		}
		transactionDate = parsed
	}

	transaction := models.Transaction{
		OrderID:         input.OrderID,
		Description:     input.Description,
		Category:        input.Category,
		Type:            input.Type,
		Amount:          decimal.NewFromFloat(*input.Amount),
		Status:          models.TransactionStatusPendente,
		TransactionDate: transactionDate,
	}
	if input.Status != "" {
		transaction.Status = input.Status
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := services.NextSequence(tx, services.SeqTransactions)
		if err != nil {
			return err
		}
		transaction.TransactionNumber = services.TransactionNumber(seq)
		return tx.Create(&transaction).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":                transaction.ID,
		"transactionNumber": transaction.TransactionNumber,
		"message":           "Transação criada com sucesso",
	})
}
