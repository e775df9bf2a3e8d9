// Package spoonacular implements a nutrition provider on top of the
// Spoonacular grocery products API.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/snackscan/backend/internal/domain"
)

const defaultBaseURL = "https://api.spoonacular.com/food"

// Client handles communication with the Spoonacular API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Spoonacular client. An empty apiKey produces an
// unconfigured client that the chain will skip.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 3),
	}
}

// Name implements domain.NutritionProvider.
func (c *Client) Name() string { return domain.SourceSpoonacular }

// Configured implements domain.NutritionProvider.
func (c *Client) Configured() bool { return c.apiKey != "" }

type productSearchResponse struct {
	Products []struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"products"`
}

type productDetail struct {
	Title     string `json:"title"`
	Nutrition struct {
		Nutrients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
			Unit   string  `json:"unit"`
		} `json:"nutrients"`
	} `json:"nutrition"`
	Servings struct {
		Size float64 `json:"size"`
		Unit string  `json:"unit"`
	} `json:"servings"`
}

// TryFetch searches Spoonacular products and maps the first match that
// carries nutrition data.
func (c *Client) TryFetch(ctx context.Context, name string) (*domain.NutritionFacts, error) {
	if !c.Configured() {
		return nil, domain.ErrProviderUnavailable
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	params := url.Values{}
	params.Add("query", name)
	params.Add("apiKey", c.apiKey)
	params.Add("number", "3")
	searchURL := fmt.Sprintf("%s/products/search?%s", c.baseURL, params.Encode())

	var search productSearchResponse
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return nil, err
	}
	if len(search.Products) == 0 {
		return nil, domain.ErrProductNotFound
	}

	for _, product := range search.Products {
		detailParams := url.Values{}
		detailParams.Add("apiKey", c.apiKey)
		detailURL := fmt.Sprintf("%s/products/%d?%s", c.baseURL, product.ID, detailParams.Encode())

		var detail productDetail
		if err := c.getJSON(ctx, detailURL, &detail); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
		if len(detail.Nutrition.Nutrients) == 0 {
			continue
		}

		return mapToFacts(&detail), nil
	}

	return nil, domain.ErrProductNotFound
}

func mapToFacts(detail *productDetail) *domain.NutritionFacts {
	amount := func(name string) float64 {
		for _, n := range detail.Nutrition.Nutrients {
			if strings.Contains(strings.ToLower(n.Name), name) {
				return n.Amount
			}
		}
		return 0
	}

	servingSize := "1 serving"
	if detail.Servings.Size > 0 && detail.Servings.Unit != "" {
		servingSize = fmt.Sprintf("%g %s", detail.Servings.Size, detail.Servings.Unit)
	}

	return &domain.NutritionFacts{
		Name:        detail.Title,
		ServingSize: servingSize,
		Calories:    amount("calories"),
		Protein:     amount("protein"),
		Carbs:       amount("carbohydrates"),
		Fat:         amount("fat"),
		Fiber:       amount("fiber"),
		Sugar:       amount("sugar"),
		Sodium:      amount("sodium"),
		Source:      domain.SourceSpoonacular,
	}
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", domain.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrProviderUnavailable, err)
	}
	return nil
}
