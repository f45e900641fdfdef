package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/remote"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider translates through the OpenAI API for users who
// configure a key in settings. Unlike the keyless endpoint it needs no
// retry loop of its own; the SDK handles transient failures.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return ProviderOpenAI
}

func (p *OpenAIProvider) Translate(ctx context.Context, text, targetLang, sourceLang string) (model.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return model.Translation{}, ErrEmptyText
	}
	if sourceLang == "" {
		sourceLang = SourceAuto
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(translatePrompt(targetLang, sourceLang)),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return model.Translation{}, fmt.Errorf("%w: %v", remote.ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return model.Translation{}, remote.ErrEmptyResponse
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		translated = text
	}

	return model.Translation{
		SourceText:     text,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		CreatedAtMs:    time.Now().UnixMilli(),
	}, nil
}

func (p *OpenAIProvider) TranslateBatch(ctx context.Context, texts []string, targetLang, sourceLang string) ([]model.Translation, error) {
	results := make([]model.Translation, 0, len(texts))
	for _, text := range texts {
		t, err := p.Translate(ctx, text, targetLang, sourceLang)
		if err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, nil
}

func translatePrompt(targetLang, sourceLang string) string {
	if sourceLang == SourceAuto {
		return fmt.Sprintf("Translate the user's text into %s. Reply with the translation only, no explanations.", targetLang)
	}
	return fmt.Sprintf("Translate the user's text from %s into %s. Reply with the translation only, no explanations.", sourceLang, targetLang)
}
