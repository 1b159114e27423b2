// Package advisor provides a best-effort client for generative pricing and
// logistics advice. Every failure degrades to a canned message; callers never
// see an error from the advice methods.
package advisor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// Fallback messages returned when advice cannot be produced. The app keeps
// working without advice, so these stand in for errors.
const (
	MsgNoKeyAdvice   = "API Key missing. Cannot generate advice."
	MsgNoAdvice      = "Could not generate advice."
	MsgAdviceError   = "Error connecting to AI advisor."
	MsgNoKeyStrategy = "API Key missing."
	MsgNoStrategy    = "No strategy generated."
	MsgStrategyError = "Error retrieving strategy."
)

// Client talks to a Gemini-compatible generateContent endpoint.
// A nil *Client is valid and yields the missing-key fallbacks.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given key and model.
// Returns nil if the key is empty; a nil client still answers with fallbacks.
func NewClient(apiKey, model string) *Client {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests and proxies.
func (c *Client) WithBaseURL(u string) *Client {
	if c != nil {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
	return c
}

// generateRequest is the generateContent wire format, reduced to the parts
// this client sends.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NegotiationAdvice returns tactical scope-adjustment suggestions for a
// client whose budget falls below the quoted tiers.
func (c *Client) NegotiationAdvice(ctx context.Context, p NegotiationPrompt) string {
	if c == nil {
		return MsgNoKeyAdvice
	}
	text, err := c.generate(ctx, p.Render())
	if err != nil {
		return MsgAdviceError
	}
	if text == "" {
		return MsgNoAdvice
	}
	return text
}

// CorporateStrategy returns a short flow recommendation for a volume
// headshot day.
func (c *Client) CorporateStrategy(ctx context.Context, p CorporatePrompt) string {
	if c == nil {
		return MsgNoKeyStrategy
	}
	text, err := c.generate(ctx, p.Render())
	if err != nil {
		return MsgStrategyError
	}
	if text == "" {
		return MsgNoStrategy
	}
	return text
}

// generate performs one generateContent call and returns the first
// candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("advisor: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("advisor: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("advisor: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("advisor: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("advisor: reading response: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("advisor: parsing response: %w", err)
	}

	if len(gr.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
