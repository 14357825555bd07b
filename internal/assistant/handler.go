package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/llm"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/order"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/pricing"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// proxyRequest is the wire contract the storefront has always spoken:
// a type discriminator plus a type-specific payload.
type proxyRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type configPayload struct {
	Prompt string `json:"prompt"`
}

type chatPayload struct {
	History []llm.Message `json:"history"`
}

// Proxy serves POST /api/gemini-proxy. "config" answers with a partial
// configuration as plain JSON; "chat" answers with a server-sent event
// stream of {"text": ...} fragments.
func (h *Handler) Proxy(c *gin.Context) {
	var req proxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	switch req.Type {
	case "config":
		var payload configPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		partial, err := h.service.Extract(c.Request.Context(), payload.Prompt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, partial)

	case "chat":
		var payload chatPayload
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		chunks, err := h.service.StreamHistory(c.Request.Context(), payload.History)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		streamFragments(c, chunks)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request type"})
	}
}

// ExtractConfig serves the session-bound extraction: the partial result is
// merged over the session's draft and the updated draft comes back with a
// fresh quote.
func (h *Handler) ExtractConfig(c *gin.Context) {
	var payload configPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt es obligatorio"})
		return
	}

	merged, quote, err := h.service.ExtractAndMerge(c.Request.Context(), c.Param("id"), payload.Prompt)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"config": merged,
			"price":  pricing.Round2(quote),
		})
	case errors.Is(err, ErrExtraction):
		c.JSON(http.StatusBadGateway, gin.H{"error": ErrExtraction.Error()})
	case errors.Is(err, order.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "sesión no encontrada"})
	case order.IsGuard(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type chatRequest struct {
	Text string `json:"text"`
}

// Chat serves the session chat: appends the message to the transcript and
// streams the reply as server-sent events. The response is an event stream
// even when the reply is empty or the backend refuses the call, so the
// client never has to sniff the content type.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text es obligatorio"})
		return
	}

	sseHeaders(c)
	err := h.service.Chat(c.Request.Context(), c.Param("id"), req.Text, func(fragment string) error {
		return writeFragment(c, fragment)
	})
	if err != nil {
		_ = writeFragment(c, StreamApology)
	}
}

// Transcript returns the session's chat history.
func (h *Handler) Transcript(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.service.Transcript(c.Param("id"))})
}

func sseHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
}

func writeFragment(c *gin.Context, fragment string) error {
	data, err := json.Marshal(gin.H{"text": fragment})
	if err != nil {
		return err
	}
	if _, err := c.Writer.WriteString("data: " + string(data) + "\n\n"); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

func streamFragments(c *gin.Context, chunks <-chan llm.Chunk) {
	sseHeaders(c)
	for chunk := range chunks {
		if chunk.Err != nil {
			_ = writeFragment(c, StreamApology)
			return
		}
		if err := writeFragment(c, chunk.Text); err != nil {
			return
		}
	}
}
