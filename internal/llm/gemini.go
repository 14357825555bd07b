package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// extractTimeout bounds the one-shot extraction call. Chat streaming is
// deliberately unbounded; a stalled backend stalls the reply, nothing else.
const extractTimeout = 60 * time.Second

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient() *GeminiClient {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

// geminiResponse is the shared shape of generateContent output, streamed
// or not.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r geminiResponse) text() (string, bool) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), true
}

// configSchema constrains the extraction output so the model can only emit
// fields the configurator understands.
func configSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"type":       map[string]any{"type": "STRING", "enum": catalog.WindowTypes()},
			"width":      map[string]any{"type": "INTEGER"},
			"height":     map[string]any{"type": "INTEGER"},
			"material":   map[string]any{"type": "STRING", "enum": catalog.Materials()},
			"profile":    map[string]any{"type": "STRING", "enum": catalog.Profiles()},
			"glass":      map[string]any{"type": "STRING", "enum": catalog.GlassTypes()},
			"color":      map[string]any{"type": "STRING"},
			"hasGrilles": map[string]any{"type": "BOOLEAN"},
		},
	}
}

func (g *GeminiClient) ExtractConfig(ctx context.Context, prompt string) (catalog.PartialConfig, error) {
	if g.apiKey == "" {
		return catalog.PartialConfig{}, errors.New("missing GEMINI_API_KEY")
	}
	if strings.TrimSpace(prompt) == "" {
		return catalog.PartialConfig{}, errors.New("empty prompt")
	}

	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": buildExtractionPrompt(prompt)}}},
		},
		"systemInstruction": map[string]any{
			"parts": []map[string]string{{"text": extractionSystemInstruction}},
		},
		"generationConfig": map[string]any{
			"temperature":      0.2,
			"responseMimeType": "application/json",
			"responseSchema":   configSchema(),
		},
	}

	resp, err := g.post(ctx, fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey), payload)
	if err != nil {
		return catalog.PartialConfig{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return catalog.PartialConfig{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return catalog.PartialConfig{}, fmt.Errorf("gemini api error: %s", string(raw))
	}

	var result geminiResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return catalog.PartialConfig{}, err
	}
	text, ok := result.text()
	if !ok {
		return catalog.PartialConfig{}, errors.New("empty gemini response")
	}

	return ParseConfig(strings.TrimSpace(text))
}

func (g *GeminiClient) StreamChat(ctx context.Context, history []Message) (<-chan Chunk, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	if len(history) == 0 {
		return nil, errors.New("empty chat history")
	}

	contents := make([]map[string]any, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, map[string]any{
			"role":  role,
			"parts": []map[string]string{{"text": msg.Text}},
		})
	}

	payload := map[string]any{
		"contents": contents,
		"systemInstruction": map[string]any{
			"parts": []map[string]string{{"text": chatSystemInstruction}},
		},
	}

	resp, err := g.post(ctx, fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", g.baseURL, g.model, g.apiKey), payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("gemini api error: %s", string(raw))
	}

	chunks := make(chan Chunk)
	go relaySSE(ctx, resp.Body, chunks)
	return chunks, nil
}

// relaySSE turns the server-sent event body into chunks. The body close is
// owned here; a read error after partial output surfaces as a final error
// chunk so the consumer can keep what it already appended. Cancelling ctx
// releases the goroutine and the body even if nobody reads the channel
// anymore.
func relaySSE(ctx context.Context, body io.ReadCloser, chunks chan<- Chunk) {
	defer close(chunks)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "" {
			continue
		}

		var event geminiResponse
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			continue
		}
		if text, ok := event.text(); ok && text != "" {
			select {
			case chunks <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case chunks <- Chunk{Err: err}:
		case <-ctx.Done():
		}
	}
}

func (g *GeminiClient) post(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.client.Do(req)
}
