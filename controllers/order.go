package controllers

import (
	"errors"
	"net/http"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/services"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	QuoteID      *uint    `json:"quoteId"`
	ClientID     uint     `json:"clientId" binding:"required"`
	ItemsSummary string   `json:"itemsSummary" binding:"required"`
	TotalValue   *float64 `json:"totalValue" binding:"required,gte=0"`
	DeliveryDate string   `json:"deliveryDate"`
	Stage        string   `json:"stage" binding:"omitempty,oneof=Aguardando Corte Estampa Costura Acabamento Qualidade Concluído"`
	Progress     *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Priority     string   `json:"priority" binding:"omitempty,oneof=Normal Alta Urgente"`
}

// UpdateOrderStageInput defines the body for advancing an order on the floor
type UpdateOrderStageInput struct {
	Stage    string `json:"stage" binding:"required,oneof=Aguardando Corte Estampa Costura Acabamento Qualidade Concluído"`
	Progress *int   `json:"progress" binding:"omitempty,gte=0,lte=100"`
}

// OrderResponse resolves the client and formats the delivery date
type OrderResponse struct {
	ID           uint    `json:"id"`
	OrderNumber  string  `json:"orderNumber"`
	ClientName   string  `json:"clientName"`
	ItemsSummary string  `json:"itemsSummary"`
	TotalValue   float64 `json:"totalValue"`
	DeliveryDate *string `json:"deliveryDate"`
	Stage        string  `json:"stage"`
	Progress     int     `json:"progress"`
	Priority     string  `json:"priority"`
}

func orderToResponse(o models.Order) OrderResponse {
	var deliveryDate *string
	if o.DeliveryDate != nil {
		formatted := utils.FormatDateBR(*o.DeliveryDate)
		deliveryDate = &formatted
	}
	return OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		ClientName:   o.Client.Name,
		ItemsSummary: o.ItemsSummary,
		TotalValue:   o.TotalValue.InexactFloat64(),
		DeliveryDate: deliveryDate,
		Stage:        o.Stage,
		Progress:     o.Progress,
		Priority:     o.Priority,
	}
}

// GetOrders retrieves all orders with the client name resolved
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Client").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// GetOrdersKanban groups orders into board columns by numeric progress.
// The grouping uses progress thresholds only; the literal stage label does
// not influence the column.
func GetOrdersKanban(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Client").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	columns := make(map[string][]OrderResponse, len(models.KanbanColumns))
	for _, name := range models.KanbanColumns {
		columns[name] = []OrderResponse{}
	}
	for _, o := range orders {
		bucket := models.ProgressBucket(o.Progress)
		columns[bucket] = append(columns[bucket], orderToResponse(o))
	}

	c.JSON(http.StatusOK, columns)
}

// CreateOrder registers a new production order and mints its number
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.First(&client, input.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.QuoteID != nil {
		var quote models.Quote
		if err := config.DB.First(&quote, *input.QuoteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Quote not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	order := models.Order{
		QuoteID:      input.QuoteID,
		ClientID:     input.ClientID,
		ItemsSummary: input.ItemsSummary,
		TotalValue:   decimal.NewFromFloat(*input.TotalValue),
		Stage:        models.StageAguardando,
		Progress:     0,
		Priority:     models.PriorityNormal,
	}

	if input.DeliveryDate != "" {
		deliveryDate, err := utils.ParseDateOnly(input.DeliveryDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid deliveryDate, expected yyyy-mm-dd")
			return
		}
		order.DeliveryDate = &deliveryDate
	}
	if input.Stage != "" {
		order.Stage = input.Stage
	}
	if input.Progress != nil {
		order.Progress = *input.Progress
	}
	if input.Priority != "" {
		order.Priority = input.Priority
	}
	// Terminal stage always means 100%
	if order.Stage == models.StageConcluido {
		order.Progress = 100
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		seq, err := services.NextSequence(tx, services.SeqOrders)
		if err != nil {
			return err
		}
		order.OrderNumber = services.OrderNumber(seq)
		return tx.Create(&order).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          order.ID,
		"orderNumber": order.OrderNumber,
		"message":     "Pedido criado com sucesso",
	})
}

// UpdateOrderStage advances an order through production
func UpdateOrderStage(c *gin.Context) {
	var input UpdateOrderStageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order.Stage = input.Stage
	if input.Progress != nil {
		order.Progress = *input.Progress
	}
	if order.Stage == models.StageConcluido {
		order.Progress = 100
	}

	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       order.ID,
		"stage":    order.Stage,
		"progress": order.Progress,
		"message":  "Pedido atualizado com sucesso",
	})
}
