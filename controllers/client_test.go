package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateClient_RequiresName(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/clients", gin.H{"contact": "Pastor João"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClientRoundTrip(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	id := createTestClient(t, r, "Igreja Batista Central", "Pastor João Silva")
	if id == 0 {
		t.Fatal("expected a non-zero client id")
	}

	w := doJSON(t, r, "GET", "/api/clients", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var clients []struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		Contact string `json:"contact"`
	}
	decodeJSON(t, w, &clients)

	if len(clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(clients))
	}
	if clients[0].ID != id || clients[0].Name != "Igreja Batista Central" || clients[0].Contact != "Pastor João Silva" {
		t.Fatalf("unexpected client payload: %+v", clients[0])
	}
}
