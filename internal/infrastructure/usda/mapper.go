package usda

import (
	"fmt"
	"strings"

	"github.com/snackscan/backend/internal/domain"
)

// FoodData Central nutrient IDs.
const (
	nutrientIDEnergy       = 1008 // kcal
	nutrientIDProtein      = 1003 // g
	nutrientIDCarbohydrate = 1005 // g
	nutrientIDTotalFat     = 1004 // g
	nutrientIDFiber        = 1079 // g
	nutrientIDSugar        = 2000 // g
	nutrientIDSodium       = 1093 // mg
)

// mapToFacts converts a FoodData Central detail record into normalized
// nutrition facts. The health score is left for the chain to compute.
func mapToFacts(detail *foodDetail) *domain.NutritionFacts {
	facts := &domain.NutritionFacts{
		Name:        detail.Description,
		ServingSize: servingSize(detail),
		Source:      domain.SourceUSDA,
	}

	for _, n := range detail.FoodNutrients {
		switch n.id() {
		case nutrientIDEnergy:
			facts.Calories = n.value()
		case nutrientIDProtein:
			facts.Protein = n.value()
		case nutrientIDCarbohydrate:
			facts.Carbs = n.value()
		case nutrientIDTotalFat:
			facts.Fat = n.value()
		case nutrientIDFiber:
			facts.Fiber = n.value()
		case nutrientIDSugar:
			facts.Sugar = n.value()
		case nutrientIDSodium:
			facts.Sodium = n.value()
		}
	}

	return facts
}

// servingSize prefers the branded label serving, then the household text,
// then the 100g default USDA uses for non-branded data.
func servingSize(detail *foodDetail) string {
	if detail.ServingSize > 0 && detail.ServingSizeUnit != "" {
		return fmt.Sprintf("%g %s", detail.ServingSize, detail.ServingSizeUnit)
	}
	if text := strings.TrimSpace(detail.HouseholdServingFullText); text != "" {
		return text
	}
	return "100 g"
}
