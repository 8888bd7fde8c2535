package intel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

// extractFencedJSON pulls a JSON payload out of model prose. Models often
// wrap the requested object in a fenced code block even when told not to;
// the inner payload is what gets parsed.
func extractFencedJSON(text string) string {
	if _, after, ok := strings.Cut(text, "```json"); ok {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
	}
	if _, after, ok := strings.Cut(text, "```"); ok {
		if inner, _, ok := strings.Cut(after, "```"); ok {
			return strings.TrimSpace(inner)
		}
	}
	return strings.TrimSpace(text)
}

type emailJudgmentPayload struct {
	RiskScore float64  `json:"risk_score"`
	Flags     []string `json:"flags"`
	Analysis  string   `json:"analysis"`
}

type handleJudgmentPayload struct {
	SuspensionRisk float64  `json:"suspension_risk"`
	RiskFactors    []string `json:"risk_factors"`
	Recommendation string   `json:"recommendation"`
}

// parseEmailJudgment normalizes a model's email verdict text into a
// Judgment. Scores arrive as JSON numbers and are clamped; any structural
// problem is an error, which callers treat as provider-unavailable.
func parseEmailJudgment(text string) (*Judgment, error) {
	var p emailJudgmentPayload
	if err := json.Unmarshal([]byte(extractFencedJSON(text)), &p); err != nil {
		return nil, fmt.Errorf("parse email judgment: %w", err)
	}
	return &Judgment{
		Score:  verdict.Clamp(int(p.RiskScore)),
		Flags:  p.Flags,
		Detail: p.Analysis,
	}, nil
}

func parseHandleJudgment(text string) (*Judgment, error) {
	var p handleJudgmentPayload
	if err := json.Unmarshal([]byte(extractFencedJSON(text)), &p); err != nil {
		return nil, fmt.Errorf("parse handle judgment: %w", err)
	}
	return &Judgment{
		Score:  verdict.Clamp(int(p.SuspensionRisk)),
		Flags:  p.RiskFactors,
		Detail: p.Recommendation,
	}, nil
}

// Prompts shared by all judgment providers.

func emailPrompt(content string) string {
	return "[CYBERSECURITY ANALYSIS]\n" +
		"Analyze this email for phishing, social engineering, or malicious intent.\n" +
		"Content: " + content + "\n\n" +
		"Return ONLY a JSON object with:\n" +
		`{"risk_score": 0-100, "flags": ["list", "of", "findings"], "analysis": "Brief explanation"}`
}

func handlePrompt(handle string) string {
	return fmt.Sprintf("Assess the suspension risk for X handle '@%s'. "+
		`Return JSON ONLY: {"suspension_risk": 0-100, "risk_factors": [], "recommendation": ""}`, handle)
}
