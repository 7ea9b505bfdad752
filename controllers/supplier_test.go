package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateSupplier_Defaults(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/suppliers", gin.H{
		"name":     "Malhas Premium SP",
		"category": "Tecidos",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/api/suppliers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var suppliers []struct {
		Status             string `json:"status"`
		Rating             int    `json:"rating"`
		ProductionTimeDays int    `json:"productionTimeDays"`
	}
	decodeJSON(t, w, &suppliers)
	if len(suppliers) != 1 {
		t.Fatalf("expected 1 supplier, got %d", len(suppliers))
	}
	s := suppliers[0]
	if s.Status != "Ativo" || s.Rating != 5 || s.ProductionTimeDays != 7 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestCreateSupplier_Validation(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"category": "Tecidos"}},
		{"unknown status", gin.H{"name": "Silk Master", "status": "Suspenso"}},
		{"rating too high", gin.H{"name": "Silk Master", "rating": 6}},
		{"rating too low", gin.H{"name": "Silk Master", "rating": 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/api/suppliers", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
