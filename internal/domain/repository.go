package domain

import (
	"context"
	"time"
)

// ImageSignalSource abstracts an external vision analysis call. It returns
// text/label tokens detected in the image with their detection scores.
// Implementations: the remote Vision API client, selected at configuration
// time when credentials are present.
type ImageSignalSource interface {
	DetectSignals(ctx context.Context, image []byte) ([]ImageSignal, error)
}

// NutritionProvider is a single external nutrition data source in the
// priority chain.
type NutritionProvider interface {
	// Name identifies the provider and doubles as the source tag.
	Name() string

	// Configured reports whether the provider has credentials. Checked
	// before any network call; unconfigured providers are skipped.
	Configured() bool

	// TryFetch attempts one lookup. Returns ErrProductNotFound when the
	// provider has no data for the name, ErrProviderUnavailable on
	// transient failure.
	TryFetch(ctx context.Context, name string) (*NutritionFacts, error)
}

// NutritionCache defines the interface for caching resolved nutrition facts.
type NutritionCache interface {
	Get(ctx context.Context, key string) (*NutritionFacts, error)
	Set(ctx context.Context, key string, facts *NutritionFacts, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
