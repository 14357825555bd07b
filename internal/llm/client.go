package llm

import (
	"context"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

// Message is one entry of a chat transcript. Role is "user" or "model".
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chunk is one fragment of a streamed reply. A Chunk with Err set is
// always the last one sent before the channel closes.
type Chunk struct {
	Text string
	Err  error
}

type Client interface {
	// ExtractConfig turns a free-text window description into a partial
	// configuration. Any subset of fields may be present.
	ExtractConfig(ctx context.Context, prompt string) (catalog.PartialConfig, error)

	// StreamChat answers the transcript incrementally. The channel closes
	// when the reply is complete, after an error chunk, or once ctx is
	// cancelled.
	StreamChat(ctx context.Context, history []Message) (<-chan Chunk, error)
}
