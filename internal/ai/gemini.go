package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// candidateModels are probed in order at startup; the first one that answers
// a trivial generation request is used for the lifetime of the provider.
// Different projects have access to different model generations, so a fixed
// single model name would fail for some deployments.
var candidateModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiProvider initializes a Gemini client and probes candidateModels
// until one responds. Returns an error when none of them are reachable.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	for _, name := range candidateModels {
		probe := client.GenerativeModel(name)
		probe.SetMaxOutputTokens(10)
		if _, err := probe.GenerateContent(ctx, genai.Text("Hello")); err != nil {
			log.Printf("gemini: model %s not available: %v", name, err)
			continue
		}

		model := client.GenerativeModel(name)
		model.SetTemperature(0.8)
		model.SetTopP(0.9)
		model.SetMaxOutputTokens(2048)
		log.Printf("gemini: using model %s", name)
		return &GeminiProvider{client: client, model: model, modelName: name}, nil
	}

	client.Close()
	return nil, fmt.Errorf("gemini: no candidate model is available")
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

func (p *GeminiProvider) Name() string {
	return "gemini/" + p.modelName
}

// GenerateText sends the prompt and concatenates the text parts of the first
// candidate.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return b.String(), nil
}
