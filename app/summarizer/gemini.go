package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend generates completions with the Gemini API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiBackend{client: client, model: model}, nil
}

// Close closes the underlying client.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

func (b *GeminiBackend) Complete(ctx context.Context, instruction, prompt string) (string, error) {
	model := b.client.GenerativeModel(b.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("gemini candidate contained no text parts")
	}

	return out.String(), nil
}
