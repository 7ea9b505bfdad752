package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreatePrint_DefaultImageType(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/prints", gin.H{
		"name":      "Salmo 23",
		"technique": "Silk Screen",
		"colors":    "2",
		"imageUrl":  "https://example.com/salmo23.png",
		"tags":      []string{"salmos", "clássico"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/api/prints", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var prints []struct {
		Name      string   `json:"name"`
		ImageType string   `json:"imageType"`
		Tags      []string `json:"tags"`
	}
	decodeJSON(t, w, &prints)
	if len(prints) != 1 {
		t.Fatalf("expected 1 print, got %d", len(prints))
	}
	if prints[0].ImageType != "url" {
		t.Fatalf("expected default imageType url, got %s", prints[0].ImageType)
	}
	if len(prints[0].Tags) != 2 || prints[0].Tags[0] != "salmos" {
		t.Fatalf("expected tags preserved, got %v", prints[0].Tags)
	}
}

func TestCreatePrint_RejectsUnknownImageType(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/prints", gin.H{
		"name":      "Cruz Minimalista",
		"imageType": "ftp",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUploadPrintImage(t *testing.T) {
	setupTestDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	r := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "minha estampa.png")
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	fw.Write([]byte("fake png bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/prints/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	decodeJSON(t, w, &resp)
	if !strings.HasPrefix(resp.URL, "/uploads/prints/") {
		t.Fatalf("expected an /uploads/prints/ URL, got %q", resp.URL)
	}
	if strings.Contains(resp.URL, " ") {
		t.Fatalf("expected a sanitized file name, got %q", resp.URL)
	}

	stored := filepath.Join(os.Getenv("UPLOAD_DIR"), "prints", filepath.Base(resp.URL))
	if _, err := os.Stat(stored); err != nil {
		t.Fatalf("expected stored file at %s: %v", stored, err)
	}
}

func TestUploadPrintImage_MissingFile(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	req := httptest.NewRequest("POST", "/api/prints/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
