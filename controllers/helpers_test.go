package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"estamparia-backend/config"
	"estamparia-backend/models"
	"estamparia-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB connects to a dedicated test database and wipes it. Set
// TEST_DATABASE_URL to run these tests; they are skipped otherwise so the
// suite never touches a live database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Supplier{},
		&models.Product{},
		&models.Print{},
		&models.Quote{},
		&models.Order{},
		&models.Transaction{},
		&models.Sequence{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	err = db.Exec(`TRUNCATE TABLE clients, suppliers, products, prints, quotes, orders, transactions, sequences RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	config.DB = db
	return db
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createTestClient(t *testing.T, r *gin.Engine, name, contact string) uint {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/clients", gin.H{"name": name, "contact": contact})
	if w.Code != 201 {
		t.Fatalf("expected 201 creating client, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &resp)
	return resp.ID
}
