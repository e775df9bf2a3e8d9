package usecase

import (
	"math"

	"github.com/snackscan/backend/internal/domain"
)

// Health score weights. Penalties and bonuses are linear in the nutrient
// value and individually capped, which keeps the score monotone in every
// input: more sugar or sodium can only lower it, more protein or fiber can
// only raise it.
const (
	scoreBase = 8.0

	sugarPenaltyPerGram    = 0.12
	sugarPenaltyCap        = 4.0
	sodiumPenaltyPerMg     = 0.005
	sodiumPenaltyCap       = 2.0
	caloriePenaltyPerKcal  = 0.015
	caloriePenaltyCap      = 2.5
	calorieFreeAllowance   = 90.0 // kcal per serving before the penalty starts
	fatPenaltyPerGram      = 0.09
	fatPenaltyCap          = 1.5
	proteinBonusPerGram    = 0.3
	proteinBonusCap        = 2.0
	fiberBonusPerGram      = 0.35
	fiberBonusCap          = 1.5
)

// Score derives a 1-10 health rating from nutrition facts. Pure and
// deterministic; the rating is always computed locally so the scale stays
// consistent regardless of which source supplied the facts.
func Score(f *domain.NutritionFacts) int {
	if f == nil {
		return 1
	}

	score := scoreBase
	score -= math.Min(sugarPenaltyCap, math.Max(0, f.Sugar)*sugarPenaltyPerGram)
	score -= math.Min(sodiumPenaltyCap, math.Max(0, f.Sodium)*sodiumPenaltyPerMg)
	score -= math.Min(caloriePenaltyCap, math.Max(0, f.Calories-calorieFreeAllowance)*caloriePenaltyPerKcal)
	score -= math.Min(fatPenaltyCap, math.Max(0, f.Fat)*fatPenaltyPerGram)
	score += math.Min(proteinBonusCap, math.Max(0, f.Protein)*proteinBonusPerGram)
	score += math.Min(fiberBonusCap, math.Max(0, f.Fiber)*fiberBonusPerGram)

	rounded := int(math.Round(score))
	if rounded < 1 {
		return 1
	}
	if rounded > 10 {
		return 10
	}
	return rounded
}
