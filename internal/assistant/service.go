package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/llm"
	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/order"
)

// ErrExtraction marks a failed or malformed AI extraction. The draft
// configuration is left untouched and the customer may simply retry.
var ErrExtraction = errors.New("no se pudo procesar la descripción, inténtalo de nuevo")

// Greeting opens every chat transcript.
const Greeting = "¡Hola! Soy tu asistente de IA. ¿En qué puedo ayudarte con tu pedido de ventanas?"

// StreamApology is appended to a reply truncated by a transport failure.
// Fragments already received stay in place.
const StreamApology = "Lo siento, ha ocurrido un error. Por favor, inténtalo de nuevo más tarde."

// Service connects the generative backend to the order sessions: config
// extraction merged over the session draft, and a per-session chat
// transcript fed by streamed fragments.
type Service struct {
	client   llm.Client
	sessions *order.SessionRepository

	mu          sync.Mutex
	transcripts map[string][]llm.Message
}

func NewService(client llm.Client, sessions *order.SessionRepository) *Service {
	return &Service{
		client:      client,
		sessions:    sessions,
		transcripts: make(map[string][]llm.Message),
	}
}

// ExtractAndMerge runs AI extraction over the free-text description and
// overlays the result on the session's draft configuration. Returned
// fields overwrite, absent fields stay untouched. The quote comes from the
// session's own price tables, so it always matches the configurator.
func (s *Service) ExtractAndMerge(ctx context.Context, sessionID, prompt string) (catalog.WindowConfig, float64, error) {
	partial, err := s.client.ExtractConfig(ctx, prompt)
	if err != nil {
		return catalog.WindowConfig{}, 0, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var (
		merged catalog.WindowConfig
		quote  float64
	)
	err = s.sessions.With(sessionID, func(lc *order.Lifecycle) error {
		var mergeErr error
		if merged, mergeErr = lc.MergeDraft(partial); mergeErr != nil {
			return mergeErr
		}
		quote = lc.DraftQuote()
		return nil
	})
	if err != nil {
		return catalog.WindowConfig{}, 0, err
	}
	return merged, quote, nil
}

// Transcript returns a copy of the session's chat history, seeding the
// greeting on first access.
func (s *Service) Transcript(sessionID string) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Message(nil), s.transcript(sessionID)...)
}

func (s *Service) transcript(sessionID string) []llm.Message {
	if _, ok := s.transcripts[sessionID]; !ok {
		s.transcripts[sessionID] = []llm.Message{{Role: "model", Text: Greeting}}
	}
	return s.transcripts[sessionID]
}

// Chat appends the customer message, streams the model's reply fragment by
// fragment through emit, and records the full reply in the transcript.
//
// A transport failure mid-stream keeps whatever arrived and appends the
// apology note; fragments are never rolled back. The returned error covers
// only failures to start the stream at all.
func (s *Service) Chat(ctx context.Context, sessionID, text string, emit func(fragment string) error) error {
	s.mu.Lock()
	history := append(s.transcript(sessionID), llm.Message{Role: "user", Text: text})
	s.transcripts[sessionID] = history
	s.mu.Unlock()

	// Unblocks the stream's relay goroutine once we stop consuming.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chunks, err := s.client.StreamChat(ctx, history)
	if err != nil {
		return err
	}

	var reply string
	for chunk := range chunks {
		if chunk.Err != nil {
			if reply != "" {
				reply += "\n\n"
			}
			reply += StreamApology
			_ = emit(StreamApology)
			break
		}
		reply += chunk.Text
		if err := emit(chunk.Text); err != nil {
			// The customer went away; keep what the model said so far.
			break
		}
	}

	s.mu.Lock()
	s.transcripts[sessionID] = append(s.transcripts[sessionID], llm.Message{Role: "model", Text: reply})
	s.mu.Unlock()
	return nil
}

// Forget drops the transcript, typically when a session starts a new order.
func (s *Service) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, sessionID)
}

// Extract runs extraction without touching any session, for the stateless
// proxy endpoint.
func (s *Service) Extract(ctx context.Context, prompt string) (catalog.PartialConfig, error) {
	partial, err := s.client.ExtractConfig(ctx, prompt)
	if err != nil {
		return catalog.PartialConfig{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return partial, nil
}

// StreamHistory relays a caller-supplied transcript, for the stateless
// proxy endpoint.
func (s *Service) StreamHistory(ctx context.Context, history []llm.Message) (<-chan llm.Chunk, error) {
	return s.client.StreamChat(ctx, history)
}
