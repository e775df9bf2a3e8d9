package domain

// Product categories found in a typical vending machine.
const (
	CategoryBeverages = "beverages"
	CategoryChips     = "chips"
	CategoryCandy     = "candy"
	CategoryCookies   = "cookies"
	CategoryCrackers  = "crackers"
	CategoryHealthy   = "healthy"
	CategoryNuts      = "nuts"
	CategorySports    = "sports"
	CategoryEnergy    = "energy"
	CategoryCoffee    = "coffee"
	CategoryBreakfast = "breakfast"
	CategorySnacks    = "snacks"
	CategoryOther     = "other"
)

// Product is a known vending machine item from the product catalog.
// Products are immutable reference data; identity is the ID.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Popularity  int      `json:"popularity"` // 0-100
	Description string   `json:"description"`
	Aliases     []string `json:"-"` // alternate names used for matching
}

// Candidate is a product hypothesized present in an analyzed image.
type Candidate struct {
	Product    Product `json:"product"`
	Confidence float64 `json:"confidence"` // 0.0-1.0
}

// ImageSignal is a single text or logo token detected in an image,
// with the detection score reported by the extractor (0.0-1.0).
type ImageSignal struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
