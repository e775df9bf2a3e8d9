package spoonacular

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snackscan/backend/internal/domain"
)

func nutrient(name string, amount float64, unit string) map[string]interface{} {
	return map[string]interface{}{"name": name, "amount": amount, "unit": unit}
}

func TestTryFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products/search":
			assert.Equal(t, "doritos", r.URL.Query().Get("query"))
			assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"products": []map[string]interface{}{
					{"id": 42, "title": "Doritos Nacho Cheese"},
				},
			})
		case "/products/42":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"title": "Doritos Nacho Cheese",
				"nutrition": map[string]interface{}{
					"nutrients": []map[string]interface{}{
						nutrient("Calories", 150, "kcal"),
						nutrient("Protein", 2, "g"),
						nutrient("Carbohydrates", 18, "g"),
						nutrient("Fat", 8, "g"),
						nutrient("Sugar", 1, "g"),
						nutrient("Sodium", 210, "mg"),
					},
				},
				"servings": map[string]interface{}{"size": 28.0, "unit": "g"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	facts, err := client.TryFetch(context.Background(), "doritos")

	require.NoError(t, err)
	assert.Equal(t, "Doritos Nacho Cheese", facts.Name)
	assert.Equal(t, "28 g", facts.ServingSize)
	assert.Equal(t, 150.0, facts.Calories)
	assert.Equal(t, 210.0, facts.Sodium)
	assert.Equal(t, domain.SourceSpoonacular, facts.Source)
	assert.True(t, facts.Valid())
}

func TestTryFetch_SkipsProductsWithoutNutrition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/products/search":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"products": []map[string]interface{}{
					{"id": 1, "title": "Bare Listing"},
					{"id": 2, "title": "Full Listing"},
				},
			})
		case "/products/1":
			json.NewEncoder(w).Encode(map[string]interface{}{"title": "Bare Listing"})
		case "/products/2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"title": "Full Listing",
				"nutrition": map[string]interface{}{
					"nutrients": []map[string]interface{}{nutrient("Calories", 90, "kcal")},
				},
			})
		}
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	facts, err := client.TryFetch(context.Background(), "listing")

	require.NoError(t, err)
	assert.Equal(t, "Full Listing", facts.Name)
}

func TestTryFetch_NoProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"products": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.TryFetch(context.Background(), "nothing")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestTryFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired) // quota exhausted
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.TryFetch(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestTryFetch_Unconfigured(t *testing.T) {
	client := NewClient("", "")
	assert.False(t, client.Configured())

	_, err := client.TryFetch(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
