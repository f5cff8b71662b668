package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hazzler78/stromsjef-sub000/internal/pkg/env"
)

const analyzePrompt = `You are reading a Norwegian electricity invoice. Extract every cost line
item with its amount in NOK (negative for credits/discounts), the invoice
total in NOK, and the consumption in kWh if stated. Answer with JSON only,
no prose, in this shape:
{"line_items":[{"description":"...","amount":0.0}],"total_amount":0.0,"consumption_kwh":0.0}
Use 0 for consumption_kwh when the invoice does not state it.`

// Analyzer extracts invoice line items through the OpenAI vision
// chat-completions API.
type Analyzer struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		apiKey:  env.GetEnv("OPENAI_API_KEY", ""),
		model:   env.GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
		baseURL: env.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// AnalyzeImage sends one invoice image to the vision model and returns the
// parsed extraction together with the raw model output.
func (a *Analyzer) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*Extraction, string, error) {
	if a.apiKey == "" {
		return nil, "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	reqBody := map[string]any{
		"model": a.model,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": analyzePrompt},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
		"temperature": 0,
		"max_tokens":  2048,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, "", fmt.Errorf("empty response from vision model")
	}

	raw := parsed.Choices[0].Message.Content
	extraction, err := DecodeExtraction(raw)
	if err != nil {
		return nil, raw, err
	}
	return extraction, raw, nil
}
