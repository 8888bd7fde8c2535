package intel

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the judgment model used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash-8b"

const geminiSystemPrompt = "You are a cybersecurity analyst. You respond " +
	"only with the requested JSON object, no prose, no markdown."

// Gemini implements JudgmentProvider on Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string { return "gemini" }

// Model reports the judgment model in use, for status surfaces.
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) JudgeEmail(ctx context.Context, content string) (*Judgment, error) {
	text, err := g.generate(ctx, emailPrompt(content))
	if err != nil {
		return nil, err
	}
	return parseEmailJudgment(text)
}

func (g *Gemini) JudgeHandle(ctx context.Context, handle string) (*Judgment, error) {
	text, err := g.generate(ctx, handlePrompt(handle))
	if err != nil {
		return nil, err
	}
	return parseHandleJudgment(text)
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(geminiSystemPrompt, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	return result.Text(), nil
}
