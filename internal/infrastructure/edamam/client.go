// Package edamam implements a nutrition provider on top of the Edamam
// Nutrition Analysis API.
package edamam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/snackscan/backend/internal/domain"
)

const defaultBaseURL = "https://api.edamam.com/api/nutrition-data/v2"

// Client handles communication with the Edamam nutrition API.
type Client struct {
	httpClient  *http.Client
	appID       string
	appKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Edamam client. Missing credentials produce an
// unconfigured client that the chain will skip.
func NewClient(appID, appKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		appID:       appID,
		appKey:      appKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

// Name implements domain.NutritionProvider.
func (c *Client) Name() string { return domain.SourceEdamam }

// Configured implements domain.NutritionProvider.
func (c *Client) Configured() bool { return c.appID != "" && c.appKey != "" }

type analysisResponse struct {
	Calories       float64 `json:"calories"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"totalNutrients"`
}

// Edamam ingredient phrasings tried per lookup. The API needs a portion
// in the ingredient line; zero reported calories means it did not
// recognize the food.
var portionPhrases = []string{"1 serving %s", "100g %s"}

// TryFetch analyzes the product as a single-ingredient query.
func (c *Client) TryFetch(ctx context.Context, name string) (*domain.NutritionFacts, error) {
	if !c.Configured() {
		return nil, domain.ErrProviderUnavailable
	}

	for _, phrase := range portionPhrases {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}

		params := url.Values{}
		params.Add("app_id", c.appID)
		params.Add("app_key", c.appKey)
		params.Add("nutrition-type", "cooking")
		params.Add("ingr", fmt.Sprintf(phrase, name))
		reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, readErr)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to parse
		case resp.StatusCode == http.StatusNotFound,
			resp.StatusCode == http.StatusUnprocessableEntity:
			continue
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
		default:
			return nil, fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, string(body))
		}

		var analysis analysisResponse
		if err := json.Unmarshal(body, &analysis); err != nil {
			return nil, fmt.Errorf("%w: decode: %v", domain.ErrProviderUnavailable, err)
		}
		if analysis.Calories <= 0 {
			continue
		}

		return mapToFacts(name, &analysis), nil
	}

	return nil, domain.ErrProductNotFound
}

// Edamam NTR codes for the nutrients we carry.
func mapToFacts(name string, analysis *analysisResponse) *domain.NutritionFacts {
	quantity := func(code string) float64 {
		if n, ok := analysis.TotalNutrients[code]; ok {
			return n.Quantity
		}
		return 0
	}

	return &domain.NutritionFacts{
		Name:        name,
		ServingSize: "1 serving",
		Calories:    analysis.Calories,
		Protein:     quantity("PROCNT"),
		Carbs:       quantity("CHOCDF"),
		Fat:         quantity("FAT"),
		Fiber:       quantity("FIBTG"),
		Sugar:       quantity("SUGAR"),
		Sodium:      quantity("NA"),
		Source:      domain.SourceEdamam,
	}
}
