package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func getStats(t *testing.T, r *gin.Engine) (stats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingQuotes      int64   `json:"pendingQuotes"`
	OrdersInProduction int64   `json:"ordersInProduction"`
	TotalClients       int64   `json:"totalClients"`
}) {
	t.Helper()
	w := doJSON(t, r, "GET", "/api/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	decodeJSON(t, w, &stats)
	return stats
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	stats := getStats(t, r)
	if stats.TotalRevenue != 0 || stats.PendingQuotes != 0 || stats.OrdersInProduction != 0 || stats.TotalClients != 0 {
		t.Fatalf("expected all-zero stats on an empty store, got %+v", stats)
	}
}

// Revenue counts confirmed income only: expenses and pending income are
// excluded.
func TestDashboardStats_RevenueScenario(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	entries := []gin.H{
		{"description": "Venda confirmada", "type": "income", "amount": 500.0, "status": "Confirmado"},
		{"description": "Compra de tecido", "type": "expense", "amount": 200.0, "status": "Confirmado"},
		{"description": "Venda pendente", "type": "income", "amount": 100.0, "status": "Pendente"},
	}
	for _, entry := range entries {
		w := doJSON(t, r, "POST", "/api/transactions", entry)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	stats := getStats(t, r)
	if stats.TotalRevenue != 500.0 {
		t.Fatalf("expected totalRevenue 500, got %v", stats.TotalRevenue)
	}
}

// The "in production" figure uses the fixed stage allow-list; Aguardando,
// Qualidade and Concluído never count, whatever their progress says.
func TestDashboardStats_Counts(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	clientID := createTestClient(t, r, "Igreja Batista Central", "")

	quotes := []gin.H{
		{"leadName": "Lead A", "itemsSummary": "x", "totalValue": 10.0, "status": "Pendente"},
		{"leadName": "Lead B", "itemsSummary": "x", "totalValue": 10.0, "status": "Pendente"},
		{"leadName": "Lead C", "itemsSummary": "x", "totalValue": 10.0, "status": "Rascunho"},
	}
	for _, q := range quotes {
		if w := doJSON(t, r, "POST", "/api/quotes", q); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	stages := []gin.H{
		{"stage": "Corte", "progress": 20},
		{"stage": "Aguardando", "progress": 0},
		{"stage": "Qualidade", "progress": 95},
		{"stage": "Concluído", "progress": 100},
	}
	for _, s := range stages {
		body := gin.H{"clientId": clientID, "itemsSummary": "x", "totalValue": 10.0}
		for k, v := range s {
			body[k] = v
		}
		if w := doJSON(t, r, "POST", "/api/orders", body); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	}

	stats := getStats(t, r)
	if stats.PendingQuotes != 2 {
		t.Fatalf("expected 2 pending quotes, got %d", stats.PendingQuotes)
	}
	if stats.OrdersInProduction != 1 {
		t.Fatalf("expected 1 order in production, got %d", stats.OrdersInProduction)
	}
	if stats.TotalClients != 1 {
		t.Fatalf("expected 1 client, got %d", stats.TotalClients)
	}
}
