package domain

import "time"

// Nutrition data sources, in chain priority order. SourceMock tags results
// produced from the bundled dataset or the generic estimate.
const (
	SourceUSDA        = "usda"
	SourceEdamam      = "edamam"
	SourceSpoonacular = "spoonacular"
	SourceMock        = "mock"
)

// NutritionFacts is the normalized nutrition record for a single product.
// A lookup always produces a fresh instance; instances are never mutated
// after the health score is applied.
type NutritionFacts struct {
	Name        string    `json:"name"`
	ServingSize string    `json:"serving_size"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"` // grams
	Carbs       float64   `json:"carbs"`   // grams
	Fat         float64   `json:"fat"`     // grams
	Fiber       float64   `json:"fiber"`   // grams
	Sugar       float64   `json:"sugar"`   // grams
	Sodium      float64   `json:"sodium"`  // milligrams
	HealthScore int       `json:"health_score"` // 1-10, always locally derived
	Source      string    `json:"source"`
	CachedAt    time.Time `json:"cached_at,omitempty"`
}

// Valid reports whether the record is structurally usable: a name, and all
// numeric fields non-negative. Providers returning anything else are treated
// as not-found and the chain moves on.
func (f *NutritionFacts) Valid() bool {
	if f == nil || f.Name == "" {
		return false
	}
	for _, v := range []float64{f.Calories, f.Protein, f.Carbs, f.Fat, f.Fiber, f.Sugar, f.Sodium} {
		if v < 0 {
			return false
		}
	}
	return true
}
