package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/popwire/popwire/app/cfg"
	"github.com/popwire/popwire/app/scraper"
)

// Generation parameters shared by every backend. Low temperature keeps the
// script factual and close to the article content.
const (
	temperature     = 0.3
	maxOutputTokens = 1024
)

// Backend is a pluggable completion provider.
type Backend interface {
	Complete(ctx context.Context, instruction, prompt string) (string, error)
}

// NewBackend selects the completion backend named in the configuration.
func NewBackend(ctx context.Context, c *cfg.Cfg) (Backend, error) {
	switch c.Backend {
	case "gemini":
		return NewGeminiBackend(ctx, c.GeminiAPIKey, c.GeminiModel)
	case "openai":
		return NewOpenAIBackend(c.OpenAIAPIKey, c.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown summarization backend: %s", c.Backend)
	}
}

// Summarizer turns a batch of scraped articles into a spoken-word script.
type Summarizer struct {
	backend  Backend
	siteName string
}

func New(backend Backend, siteName string) *Summarizer {
	return &Summarizer{backend: backend, siteName: siteName}
}

// Summarize builds the prompt for the batch and runs it through the
// configured backend. An empty or malformed completion is an error; the
// caller treats summarization failure as fatal for the run.
func (s *Summarizer) Summarize(ctx context.Context, articles []scraper.Article) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles to summarize")
	}

	prompt := BuildPrompt(s.siteName, articles)
	slog.Info("Generating script", "articles", len(articles), "prompt_length", len(prompt))

	script, err := s.backend.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	script = strings.TrimSpace(script)
	if script == "" {
		return "", fmt.Errorf("backend returned an empty script")
	}

	slog.Info("Script generated", "length", len(script))
	return script, nil
}
