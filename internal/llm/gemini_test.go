package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

func testClient(server *httptest.Server) *GeminiClient {
	return &GeminiClient{
		apiKey:  "test-key",
		model:   "gemini-2.5-flash",
		baseURL: server.URL,
		client:  server.Client(),
	}
}

func candidateJSON(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestExtractConfigParsesModelOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := req["generationConfig"]; !ok {
			t.Error("generationConfig missing from request")
		}

		w.Write([]byte(candidateJSON(`{"material":"Madera","hasGrilles":true}`)))
	}))
	defer server.Close()

	partial, err := testClient(server).ExtractConfig(context.Background(), "una ventana de madera con cuarterones")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if partial.Material == nil || *partial.Material != catalog.Wood {
		t.Fatalf("material %v", partial.Material)
	}
	if partial.HasGrilles == nil || !*partial.HasGrilles {
		t.Fatalf("hasGrilles %v", partial.HasGrilles)
	}
}

func TestExtractConfigAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := testClient(server).ExtractConfig(context.Background(), "una ventana"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestExtractConfigRequiresAPIKey(t *testing.T) {
	c := &GeminiClient{model: "gemini-2.5-flash", baseURL: "http://unused", client: http.DefaultClient}
	if _, err := c.ExtractConfig(context.Background(), "una ventana"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestStreamChatRelaysFragments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "alt=sse") {
			t.Errorf("expected alt=sse query, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: " + candidateJSON("Hola, ") + "\n\n"))
		w.Write([]byte("data: " + candidateJSON("¿en qué puedo ayudarte?") + "\n\n"))
	}))
	defer server.Close()

	chunks, err := testClient(server).StreamChat(context.Background(), []Message{{Role: "user", Text: "hola"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got strings.Builder
	for chunk := range chunks {
		if chunk.Err != nil {
			t.Fatalf("unexpected stream error: %v", chunk.Err)
		}
		got.WriteString(chunk.Text)
	}
	if got.String() != "Hola, ¿en qué puedo ayudarte?" {
		t.Fatalf("assembled reply %q", got.String())
	}
}

func TestStreamChatSkipsMalformedEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data: not-json\n\n"))
		w.Write([]byte(": comment line\n\n"))
		w.Write([]byte("data: " + candidateJSON("ok") + "\n\n"))
	}))
	defer server.Close()

	chunks, err := testClient(server).StreamChat(context.Background(), []Message{{Role: "user", Text: "hola"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fragments []string
	for chunk := range chunks {
		if chunk.Err != nil {
			t.Fatalf("unexpected stream error: %v", chunk.Err)
		}
		fragments = append(fragments, chunk.Text)
	}
	if len(fragments) != 1 || fragments[0] != "ok" {
		t.Fatalf("fragments %v", fragments)
	}
}

func TestStreamChatShutsDownWhenConsumerCancels(t *testing.T) {
	serverDone := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(serverDone)
		w.Header().Set("Content-Type", "text/event-stream")
		for _, text := range []string{"uno", "dos", "tres"} {
			w.Write([]byte("data: " + candidateJSON(text) + "\n\n"))
		}
		w.(http.Flusher).Flush()
		// Hold the connection open like a live backend would.
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chunks, err := testClient(server).StreamChat(ctx, []Message{{Role: "user", Text: "hola"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Consume one fragment, then walk away mid-stream.
	<-chunks
	cancel()

	drained := make(chan struct{})
	go func() {
		for range chunks {
		}
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("chunk channel never closed after cancel")
	}

	select {
	case <-serverDone:
	case <-time.After(2 * time.Second):
		t.Fatal("response body left open after cancel")
	}
}

func TestStreamChatAPIErrorBeforeStreaming(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := testClient(server).StreamChat(context.Background(), []Message{{Role: "user", Text: "hola"}}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestStreamChatRejectsEmptyHistory(t *testing.T) {
	c := &GeminiClient{apiKey: "k", model: "m", baseURL: "http://unused", client: http.DefaultClient}
	if _, err := c.StreamChat(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty history")
	}
}
