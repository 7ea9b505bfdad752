package controllers

import (
	"net/http"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DashboardStats is the summary block on the dashboard page
type DashboardStats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingQuotes      int64   `json:"pendingQuotes"`
	OrdersInProduction int64   `json:"ordersInProduction"`
	TotalClients       int64   `json:"totalClients"`
}

// Fixed allow-list for the "in production" figure. Deliberately not derived
// from the progress buckets: Aguardando, Qualidade and Concluído don't count.
var productionStages = []string{
	models.StageCorte,
	models.StageEstampa,
	models.StageCostura,
	models.StageAcabamento,
}

// GetDashboardStats recomputes the dashboard figures from the current store
// contents on every request. Any failed query fails the whole response.
func GetDashboardStats(c *gin.Context) {
	var totalRevenue decimal.Decimal
	if err := config.DB.Model(&models.Transaction{}).
		Where("type = ? AND status = ?", models.TransactionTypeIncome, models.TransactionStatusConfirmado).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	var pendingQuotes int64
	if err := config.DB.Model(&models.Quote{}).
		Where("status = ?", models.QuoteStatusPendente).
		Count(&pendingQuotes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	var ordersInProduction int64
	if err := config.DB.Model(&models.Order{}).
		Where("stage IN ?", productionStages).
		Count(&ordersInProduction).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	var totalClients int64
	if err := config.DB.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	c.JSON(http.StatusOK, DashboardStats{
		TotalRevenue:       totalRevenue.InexactFloat64(),
		PendingQuotes:      pendingQuotes,
		OrdersInProduction: ordersInProduction,
		TotalClients:       totalClients,
	})
}
