// Package translate turns captions into the user's language. The
// default provider talks to an unauthenticated Google Translate
// endpoint with retry and backoff; an OpenAI-backed provider can be
// selected in settings for users with an API key.
package translate

import (
	"context"
	"errors"

	"cosmiccanvas/server/internal/model"
)

// SourceAuto asks the endpoint to detect the source language.
const SourceAuto = "auto"

// Provider translates text. Implementations must treat sourceLang ==
// "" as auto-detection and must never partially succeed on a batch.
type Provider interface {
	// Translate translates a single non-empty text.
	Translate(ctx context.Context, text, targetLang, sourceLang string) (model.Translation, error)
	// TranslateBatch translates texts one by one in order. The first
	// failure aborts the batch; no partial results are returned.
	TranslateBatch(ctx context.Context, texts []string, targetLang, sourceLang string) ([]model.Translation, error)
	// Name returns the provider name.
	Name() string
}

// Provider names.
const (
	ProviderSimple = "simple"
	ProviderOpenAI = "openai"
)

// Config selects and configures a provider.
type Config struct {
	Provider string // simple, openai
	APIKey   string // openai only
	BaseURL  string // optional override
	Model    string // openai only
}

var (
	ErrInvalidProvider = errors.New("invalid translation provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrEmptyText       = errors.New("empty text")
)

// NewProvider creates a provider based on the config. An empty provider
// name selects the keyless endpoint.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "", ProviderSimple:
		return NewClient(nil, cfg.BaseURL), nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, ErrInvalidProvider
	}
}
