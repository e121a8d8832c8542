package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/freshkeep/freshkeep-backend/internal/utils"
)

// Generator produces recipe markdown from a list of ingredients.
type Generator interface {
	Generate(ctx context.Context, ingredients []string, dietary string) (string, error)
}

type geminiGenerator struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiGenerator() Generator {
	return &geminiGenerator{
		apiKey: utils.GetConfig("GEMINI_API_KEY"),
		model:  utils.GetConfig("GEMINI_MODEL"),
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, ingredients []string, dietary string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if g.model == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	prompt := fmt.Sprintf(
		"You are a helpful cooking assistant. Create one complete recipe that uses "+
			"some or all of these ingredients: %s. "+
			"Prefer ingredients that are closest to expiry. "+
			"Format the response in Markdown with a title on the first line, "+
			"an ingredients list, and numbered preparation steps. "+
			"Keep the recipe realistic and achievable in a home kitchen.",
		strings.Join(ingredients, ", "),
	)
	if strings.TrimSpace(dietary) != "" {
		prompt += fmt.Sprintf(" Respect these dietary preferences: %s.", dietary)
	}

	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)

	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"parts": []map[string]any{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature":     0.8,
			"maxOutputTokens": 2048,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}

	text := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("gemini API returned empty text")
	}
	return text, nil
}
