package summarizer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/popwire/popwire/app/cfg"
	"github.com/popwire/popwire/app/scraper"
)

// mockBackend records the last request and returns a canned completion.
type mockBackend struct {
	response        string
	err             error
	lastInstruction string
	lastPrompt      string
	calls           int
}

func (m *mockBackend) Complete(ctx context.Context, instruction, prompt string) (string, error) {
	m.calls++
	m.lastInstruction = instruction
	m.lastPrompt = prompt
	return m.response, m.err
}

func testArticles() []scraper.Article {
	return []scraper.Article{
		{Title: "Headline one", URL: "https://x.test/1", Content: "Content of the first article."},
		{Title: "Headline two", URL: "https://x.test/2", Content: ""},
	}
}

func TestSummarize(t *testing.T) {
	backend := &mockBackend{response: "HOOK: ...\nNEWS 1: ...\nOUTRO: ..."}
	s := New(backend, "Example News")

	script, err := s.Summarize(context.Background(), testArticles())
	if err != nil {
		t.Fatal(err)
	}

	if script != "HOOK: ...\nNEWS 1: ...\nOUTRO: ..." {
		t.Errorf("Unexpected script: %s", script)
	}
	if backend.calls != 1 {
		t.Errorf("Expected exactly one completion call, got %d", backend.calls)
	}
	if !strings.Contains(backend.lastInstruction, "NO CLICKBAIT") {
		t.Error("Expected the instruction block to be passed to the backend")
	}
	if !strings.Contains(backend.lastPrompt, "Headline one") {
		t.Error("Expected the serialized articles to be passed to the backend")
	}
}

func TestSummarizeTrimsWhitespace(t *testing.T) {
	backend := &mockBackend{response: "\n  the script  \n"}
	s := New(backend, "Example News")

	script, err := s.Summarize(context.Background(), testArticles())
	if err != nil {
		t.Fatal(err)
	}
	if script != "the script" {
		t.Errorf("Expected trimmed script, got '%s'", script)
	}
}

func TestSummarizeBackendError(t *testing.T) {
	backend := &mockBackend{err: fmt.Errorf("quota exceeded")}
	s := New(backend, "Example News")

	if _, err := s.Summarize(context.Background(), testArticles()); err == nil {
		t.Error("Expected error when the backend fails")
	}
}

func TestSummarizeEmptyCompletionIsError(t *testing.T) {
	backend := &mockBackend{response: "   \n  "}
	s := New(backend, "Example News")

	if _, err := s.Summarize(context.Background(), testArticles()); err == nil {
		t.Error("Expected error for an empty completion")
	}
}

func TestSummarizeNoArticlesIsError(t *testing.T) {
	s := New(&mockBackend{response: "script"}, "Example News")

	if _, err := s.Summarize(context.Background(), nil); err == nil {
		t.Error("Expected error for an empty batch")
	}
}

func TestNewBackendSelection(t *testing.T) {
	c := &cfg.Cfg{Backend: "openai", OpenAIAPIKey: "key", OpenAIModel: "gpt-4o-mini"}
	backend, err := NewBackend(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := backend.(*OpenAIBackend); !ok {
		t.Errorf("Expected an OpenAI backend, got %T", backend)
	}

	c = &cfg.Cfg{Backend: "nonsense"}
	if _, err := NewBackend(context.Background(), c); err == nil {
		t.Error("Expected error for unknown backend name")
	}
}
