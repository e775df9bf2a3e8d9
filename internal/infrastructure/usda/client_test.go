package usda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackscan/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.True(t, client.Configured())
	assert.Equal(t, domain.SourceUSDA, client.Name())
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "")
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.False(t, client.Configured())
}

func TestTryFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/v1/foods/search"):
			assert.Equal(t, "snickers bar", r.URL.Query().Get("query"))
			assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

			json.NewEncoder(w).Encode(searchResponse{Foods: []searchFood{
				{FdcID: 111, Description: "Candy, generic", DataType: "Branded"},
				{FdcID: 222, Description: "SNICKERS BAR, chocolate", DataType: "Branded"},
			}})
		case r.URL.Path == "/v1/food/222":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"description":     "SNICKERS BAR, chocolate",
				"servingSize":     52.7,
				"servingSizeUnit": "g",
				"foodNutrients": []map[string]interface{}{
					{"nutrientId": 1008, "value": 250.0},
					{"nutrientId": 1003, "value": 4.0},
					{"nutrientId": 1005, "value": 33.0},
					{"nutrientId": 1004, "value": 12.0},
					{"nutrientId": 2000, "value": 27.0},
					{"nutrientId": 1093, "value": 120.0},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	facts, err := client.TryFetch(context.Background(), "snickers bar")

	require.NoError(t, err)
	require.NotNil(t, facts)
	assert.Equal(t, "SNICKERS BAR, chocolate", facts.Name)
	assert.Equal(t, "52.7 g", facts.ServingSize)
	assert.Equal(t, 250.0, facts.Calories)
	assert.Equal(t, 4.0, facts.Protein)
	assert.Equal(t, 27.0, facts.Sugar)
	assert.Equal(t, 120.0, facts.Sodium)
	assert.Equal(t, domain.SourceUSDA, facts.Source)
	assert.True(t, facts.Valid())
}

func TestTryFetch_NestedNutrientShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if strings.HasPrefix(r.URL.Path, "/v1/foods/search") {
			json.NewEncoder(w).Encode(searchResponse{Foods: []searchFood{
				{FdcID: 333, Description: "Peanuts, dry roasted", DataType: "Foundation"},
			}})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"description": "Peanuts, dry roasted",
			"foodNutrients": []map[string]interface{}{
				{"amount": 587.0, "nutrient": map[string]interface{}{"id": 1008, "name": "Energy", "unitName": "kcal"}},
				{"amount": 24.4, "nutrient": map[string]interface{}{"id": 1003, "name": "Protein", "unitName": "g"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	facts, err := client.TryFetch(context.Background(), "peanuts")

	require.NoError(t, err)
	assert.Equal(t, 587.0, facts.Calories)
	assert.Equal(t, 24.4, facts.Protein)
	assert.Equal(t, "100 g", facts.ServingSize)
}

func TestTryFetch_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.TryFetch(context.Background(), "nonexistent-product")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTryFetch_NotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.TryFetch(context.Background(), "whatever")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTryFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.TryFetch(context.Background(), "whatever")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestTryFetch_Unconfigured(t *testing.T) {
	client := NewClient("", "")
	_, err := client.TryFetch(context.Background(), "whatever")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestTryFetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.TryFetch(ctx, "whatever")
	assert.Error(t, err)
}
