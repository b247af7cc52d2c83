package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/candidwatch/internal/metrics"
	"github.com/blackwell-systems/candidwatch/internal/session"
)

const (
	claudeAPIURL     = "https://api.anthropic.com/v1/messages"
	claudeAPIVersion = "2023-06-01"
	defaultModel     = "claude-sonnet-4-20250514"
	maxTokens        = 4096
	apiTimeout       = 60 * time.Second
)

// Options controls whether AI generation is used and with what configuration.
type Options struct {
	APIKey string
	Model  string
}

// Generate produces insights for a session. With an API key it calls the
// Claude API and parses the structured summary; without one, or on any API
// failure, it falls back to the deterministic metrics-based analysis.
func Generate(log *session.Log, report metrics.Report, opts Options) Insights {
	if opts.APIKey == "" {
		return Fallback(report)
	}

	model := opts.Model
	if model == "" {
		model = defaultModel
	}

	userPrompt := BuildAnalysisPrompt(log, report)
	responseText, err := callClaudeAPI(opts.APIKey, model, analystSystemPrompt, userPrompt)
	if err != nil {
		return Fallback(report)
	}

	insights, err := parseInsights(responseText)
	if err != nil {
		return Fallback(report)
	}

	insights.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	insights.Model = model
	return insights
}

// claudeAPIRequest is the request body for the Claude Messages API.
type claudeAPIRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []claudeAPIMessage `json:"messages"`
}

// claudeAPIMessage is a single message in the Claude Messages API request.
type claudeAPIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeAPIResponse is the response body from the Claude Messages API.
type claudeAPIResponse struct {
	ID      string                  `json:"id"`
	Type    string                  `json:"type"`
	Content []claudeAPIContentBlock `json:"content"`
	Error   *claudeAPIError         `json:"error,omitempty"`
}

// claudeAPIContentBlock is a single content block in the API response.
type claudeAPIContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// claudeAPIError represents an error response from the Claude API.
type claudeAPIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// callClaudeAPI sends a request to the Claude Messages API and returns the
// text content of the response. It uses net/http with no external dependencies.
func callClaudeAPI(apiKey, model, systemPrompt, userPrompt string) (string, error) {
	reqBody := claudeAPIRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []claudeAPIMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{Timeout: apiTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	var apiResp claudeAPIResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	// Extract text from content blocks.
	var textParts []string
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}

	if len(textParts) == 0 {
		return "", fmt.Errorf("no text content in API response")
	}

	return strings.Join(textParts, ""), nil
}

// parseInsights extracts the JSON summary from the model response. The JSON
// may be wrapped in markdown code fences or preceded by narrative text.
func parseInsights(responseText string) (Insights, error) {
	text := strings.TrimSpace(responseText)

	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	} else if idx := strings.Index(text, "{"); idx >= 0 {
		text = text[idx:]
		if end := strings.LastIndex(text, "}"); end >= 0 {
			text = text[:end+1]
		}
	}
	text = strings.TrimSpace(text)

	var insights Insights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return Insights{}, fmt.Errorf("parsing insights JSON: %w (response was: %.200s)", err, text)
	}

	if insights.HireRecommendation == "" {
		return Insights{}, fmt.Errorf("insights response missing recommendation")
	}

	return insights, nil
}
