// Package usda implements the government database provider on top of the
// USDA FoodData Central API.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/snackscan/backend/internal/domain"
)

const defaultBaseURL = "https://api.nal.usda.gov/fdc"

// Client handles communication with the USDA FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new USDA API client. An empty apiKey produces an
// unconfigured client that the chain will skip.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	// USDA allows 1000 requests per hour: 1000/3600 ≈ 0.278 requests/sec.
	limiter := rate.NewLimiter(rate.Limit(0.278), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// Name implements domain.NutritionProvider.
func (c *Client) Name() string { return domain.SourceUSDA }

// Configured implements domain.NutritionProvider.
func (c *Client) Configured() bool { return c.apiKey != "" }

type searchResponse struct {
	Foods []searchFood `json:"foods"`
}

type searchFood struct {
	FdcID       int64  `json:"fdcId"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
}

type foodDetail struct {
	Description              string         `json:"description"`
	ServingSize              float64        `json:"servingSize"`
	ServingSizeUnit          string         `json:"servingSizeUnit"`
	HouseholdServingFullText string         `json:"householdServingFullText"`
	FoodNutrients            []foodNutrient `json:"foodNutrients"`
}

// foodNutrient covers both wire shapes: search results flatten the
// nutrient fields, detail responses nest them.
type foodNutrient struct {
	NutrientID int     `json:"nutrientId"`
	Value      float64 `json:"value"`
	Amount     float64 `json:"amount"`
	Nutrient   struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
}

func (n foodNutrient) id() int {
	if n.NutrientID != 0 {
		return n.NutrientID
	}
	return n.Nutrient.ID
}

func (n foodNutrient) value() float64 {
	if n.Amount != 0 {
		return n.Amount
	}
	return n.Value
}

// TryFetch searches FoodData Central and maps the best hit to nutrition
// facts. One attempt per call: transient errors surface as
// ErrProviderUnavailable so the chain can move on.
func (c *Client) TryFetch(ctx context.Context, name string) (*domain.NutritionFacts, error) {
	if !c.Configured() {
		return nil, domain.ErrProviderUnavailable
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	params := url.Values{}
	params.Add("query", name)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", "Branded,Survey (FNDDS),Foundation")
	params.Add("pageSize", "5")
	searchURL := fmt.Sprintf("%s/v1/foods/search?%s", c.baseURL, params.Encode())

	var search searchResponse
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return nil, err
	}
	if len(search.Foods) == 0 {
		return nil, domain.ErrProductNotFound
	}

	best := search.Foods[0]
	nameLower := strings.ToLower(name)
	for _, food := range search.Foods {
		if strings.Contains(strings.ToLower(food.Description), nameLower) {
			best = food
			break
		}
	}

	detailParams := url.Values{}
	detailParams.Add("api_key", c.apiKey)
	detailURL := fmt.Sprintf("%s/v1/food/%d?%s", c.baseURL, best.FdcID, detailParams.Encode())

	var detail foodDetail
	if err := c.getJSON(ctx, detailURL, &detail); err != nil {
		return nil, err
	}

	return mapToFacts(&detail), nil
}

// getJSON executes a GET request and decodes the response body. 404 maps
// to ErrProductNotFound, anything else non-200 to ErrProviderUnavailable.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "SnackScan/1.0")

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
