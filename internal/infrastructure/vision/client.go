// Package vision implements the remote image signal extractor on top of
// the Google Cloud Vision REST API (text and logo detection).
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/snackscan/backend/internal/domain"
)

const defaultBaseURL = "https://vision.googleapis.com"

// Client calls the Vision images:annotate endpoint.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new Vision client. An empty apiKey produces an
// unconfigured client; callers should then run in simulation mode.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    imageContent `json:"image"`
	Features []feature    `json:"features"`
}

type imageContent struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []struct {
		TextAnnotations []annotation `json:"textAnnotations"`
		LogoAnnotations []annotation `json:"logoAnnotations"`
		Error           *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

type annotation struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// DetectSignals sends the image for text and logo detection and returns
// the detected tokens with their scores.
func (c *Client) DetectSignals(ctx context.Context, img []byte) ([]domain.ImageSignal, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("vision client not configured")
	}

	reqBody := annotateRequest{
		Requests: []annotateEntry{{
			Image: imageContent{Content: base64.StdEncoding.EncodeToString(img)},
			Features: []feature{
				{Type: "TEXT_DETECTION", MaxResults: 50},
				{Type: "LOGO_DETECTION", MaxResults: 10},
			},
		}},
	}

	payload, err := json.Marshal(&reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal annotate request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/images:annotate?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("vision API error: status %d: %s", resp.StatusCode, string(body))
	}

	var annotate annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&annotate); err != nil {
		return nil, fmt.Errorf("failed to decode annotate response: %w", err)
	}
	if len(annotate.Responses) == 0 {
		return nil, fmt.Errorf("vision API returned no responses")
	}

	result := annotate.Responses[0]
	if result.Error != nil {
		return nil, fmt.Errorf("vision API error: %s", result.Error.Message)
	}

	signals := make([]domain.ImageSignal, 0, len(result.TextAnnotations)+len(result.LogoAnnotations))
	for _, a := range result.TextAnnotations {
		signals = append(signals, domain.ImageSignal{Text: a.Description, Score: a.Score})
	}
	for _, a := range result.LogoAnnotations {
		signals = append(signals, domain.ImageSignal{Text: a.Description, Score: a.Score})
	}

	return signals, nil
}
