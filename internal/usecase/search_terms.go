package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// Compiled patterns for search-term simplification.
var (
	sizePatternRegex = regexp.MustCompile(
		`(?i)\b\d+\.?\d*\s*(?:fl\s*oz|oz|ml|liters?|l|gallons?|gal|lbs?|pounds?|kg|grams?|g|ct|count|pk|pack|ea|each|qt|quart|pt|pint)\b`,
	)
	packCountPattern = regexp.MustCompile(
		`(?i)\b\d+[-\s]*(pack|pk|count|ct)\b|\bpack\s*of\s*\d+\b|\b\d+\s*(cans?|bottles?|pouches?|bars?|pieces?)\b`,
	)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// retailNoiseWords are size/flavor qualifiers that hurt provider search
// precision when left in a query. Matched on word boundaries only, so a
// brand word that merely contains one survives intact.
var retailNoiseWords = []string{
	"party size", "family size", "value pack", "bonus size",
	"club pack", "mega size", "snack size", "fun size",
	"share size", "king size", "travel size", "xxl", "xl",
}

var retailNoiseRegex = regexp.MustCompile(
	`(?i)\b(?:` + strings.Join(retailNoiseWords, `|`) + `)\b`,
)

// knownSearchTerms maps catalog product names to hand-tuned provider query
// terms that return better results than the raw name.
var knownSearchTerms = map[string][]string{
	"Coca-Cola Classic":               {"coca cola classic", "coke classic", "coca-cola original"},
	"Diet Coke":                       {"diet coke", "coca cola diet"},
	"Pepsi Cola":                      {"pepsi cola", "pepsi original", "pepsi classic"},
	"Diet Pepsi":                      {"diet pepsi", "pepsi diet"},
	"Mountain Dew":                    {"mountain dew original", "mtn dew"},
	"Dr Pepper":                       {"dr pepper original", "dr. pepper", "doctor pepper"},
	"Sprite Lemon-Lime Soda":          {"sprite original", "sprite lemon lime"},
	"Fanta Orange Soda":               {"fanta orange", "fanta orange soda"},
	"Snickers Chocolate Bar":          {"snickers bar", "snickers original", "snickers chocolate peanut"},
	"M&Ms Milk Chocolate":             {"m&m milk chocolate", "mm plain", "m and m chocolate"},
	"Reeses Peanut Butter Cups":       {"reeses cups", "reese peanut butter cups", "peanut butter cups"},
	"Kit Kat Wafer Bar":               {"kit kat original", "kitkat wafer", "kit-kat chocolate"},
	"Twix Caramel Cookie Bar":         {"twix original", "twix caramel", "twix cookie bar"},
	"Hersheys Milk Chocolate Bar":     {"hershey milk chocolate", "hersheys original", "hershey bar"},
	"Milky Way Chocolate Bar":         {"milky way original", "milky way bar"},
	"Skittles Original":               {"skittles original", "skittles fruit", "skittles candy"},
	"Lays Classic Potato Chips":       {"lays classic", "lays original", "lay potato chips original"},
	"Doritos Nacho Cheese":            {"doritos nacho cheese", "doritos original", "nacho cheese doritos"},
	"Cheetos Crunchy":                 {"cheetos original", "cheetos crunchy", "cheetos cheese puffs"},
	"Pringles Original":               {"pringles original", "pringles classic"},
	"Fritos Original Corn Chips":      {"fritos original", "fritos corn chips"},
	"Sun Chips Original":              {"sun chips original", "sunchips multigrain"},
	"Oreo Chocolate Sandwich Cookies": {"oreo original", "oreo chocolate cookies", "oreo sandwich"},
	"Cheez-It Original Crackers":      {"cheez it original", "cheezit crackers", "cheese crackers"},
	"Ritz Crackers":                   {"ritz original crackers", "ritz round crackers"},
	"Nature Valley Granola Bar":       {"nature valley granola", "granola bar", "nature valley oats"},
	"Clif Energy Bar":                 {"clif bar original", "clif energy bar", "cliff bar"},
	"Planters Roasted Peanuts":        {"planters peanuts", "roasted peanuts", "planters dry roasted"},
	"Dasani Bottled Water":            {"dasani water", "bottled water", "purified water"},
	"Aquafina Bottled Water":          {"aquafina water", "aquafina purified"},
	"Gatorade Sports Drink":           {"gatorade original", "gatorade thirst quencher", "sports drink"},
	"Red Bull Energy Drink":           {"red bull original", "red bull energy", "energy drink"},
	"Monster Energy Drink":            {"monster energy original", "monster energy drink"},
	"Vitaminwater":                    {"vitamin water", "vitaminwater enhanced"},
}

// knownSearchTermNames fixes the scan order over knownSearchTerms so an
// ambiguous query always resolves to the same product.
var knownSearchTermNames = func() []string {
	names := make([]string, 0, len(knownSearchTerms))
	for name := range knownSearchTerms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// OptimizeSearchTerms produces the ordered list of query terms to try
// against a nutrition provider for a product name. Known catalog products
// use their hand-tuned terms; anything else gets the literal name followed
// by a simplified form with size and flavor qualifiers stripped.
func OptimizeSearchTerms(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	normalized := strings.ToLower(trimmed)
	for _, product := range knownSearchTermNames {
		productLower := strings.ToLower(product)
		if strings.Contains(normalized, productLower) || strings.Contains(productLower, normalized) {
			return knownSearchTerms[product]
		}
	}

	candidates := []string{trimmed, SimplifyProductName(trimmed)}

	var out []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if len(c) < 3 {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// SimplifyProductName strips size/quantity patterns, pack counts, and
// retail qualifiers from a product name to produce a focused query.
func SimplifyProductName(name string) string {
	cleaned := sizePatternRegex.ReplaceAllString(name, " ")
	cleaned = packCountPattern.ReplaceAllString(cleaned, " ")
	cleaned = retailNoiseRegex.ReplaceAllString(cleaned, " ")
	cleaned = multiSpaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Cap length to keep provider query strings sane.
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
		if lastSpace := strings.LastIndex(cleaned, " "); lastSpace > 50 {
			cleaned = cleaned[:lastSpace]
		}
	}

	return cleaned
}
