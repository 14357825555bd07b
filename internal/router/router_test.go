package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/assistant"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/info"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/llm"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/order"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/storage"
)

type stubLLM struct{}

func (stubLLM) ExtractConfig(context.Context, string) (catalog.PartialConfig, error) {
	return catalog.PartialConfig{}, nil
}

func (stubLLM) StreamChat(context.Context, []llm.Message) (<-chan llm.Chunk, error) {
	chunks := make(chan llm.Chunk)
	close(chunks)
	return chunks, nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tables := pricing.DefaultTables()
	sessions := order.NewSessionRepository(tables, pricing.VATRate)
	assistantService := assistant.NewService(stubLLM{}, sessions)

	return New(gin.New(), Handlers{
		Catalog:   catalog.NewHandler(),
		Pricing:   pricing.NewHandler(tables, pricing.VATRate),
		Order:     order.NewHandler(sessions, storage.SimulatedUploader{}),
		Assistant: assistant.NewHandler(assistantService),
		Info:      info.NewHandler(),
	})
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter()
	if w := get(r, "/health"); w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCatalogListsOptions(t *testing.T) {
	r := setupTestRouter()
	w := get(r, "/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out["types"].([]any)) != 5 {
		t.Fatalf("types %v", out["types"])
	}
	if len(out["colors"].([]any)) != 5 {
		t.Fatalf("colors %v", out["colors"])
	}
}

func TestQuoteEndpoint(t *testing.T) {
	r := setupTestRouter()

	body, _ := json.Marshal(catalog.DefaultConfig())
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["price"] != 596.12 {
		t.Fatalf("price %v, want 596.12", out["price"])
	}
}

func TestInfoEndpoints(t *testing.T) {
	r := setupTestRouter()

	if w := get(r, "/info/faqs"); w.Code != http.StatusOK {
		t.Fatalf("faqs status %d", w.Code)
	}
	if w := get(r, "/info/technical"); w.Code != http.StatusOK {
		t.Fatalf("technical status %d", w.Code)
	}
}

func TestSessionRoutesRegistered(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session status %d", w.Code)
	}
}
