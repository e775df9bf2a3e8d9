package usecase

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/snackscan/backend/internal/domain"
)

// Deterministic simulation bounds. Confidence values and the selected
// subset derive entirely from the image content hash, so identical bytes
// always produce identical results.
const (
	simMinProducts     = 2
	simMaxProducts     = 6
	simMinConfidence   = 0.55
	simConfidenceSpan  = 0.40
	simPopularityFloor = 60
)

// simulateCandidates produces a reproducible pseudo-random candidate list
// for an image when no extractor is configured or the extractor call
// failed. Selection is weighted toward higher-popularity products.
func simulateCandidates(products []domain.Product, img []byte) []domain.Candidate {
	sum := sha256.Sum256(img)
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	pool := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Popularity >= simPopularityFloor {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, products...)
	}

	count := simMinProducts + rng.Intn(simMaxProducts-simMinProducts+1)
	if count > len(pool) {
		count = len(pool)
	}

	selected := weightedSample(rng, pool, count)

	candidates := make([]domain.Candidate, 0, len(selected))
	for _, p := range selected {
		candidates = append(candidates, domain.Candidate{
			Product:    p,
			Confidence: stableConfidence(sum[:], p.ID),
		})
	}

	sortCandidates(candidates)
	return candidates
}

// weightedSample draws count products without replacement, with selection
// probability proportional to popularity.
func weightedSample(rng *rand.Rand, pool []domain.Product, count int) []domain.Product {
	remaining := make([]domain.Product, len(pool))
	copy(remaining, pool)

	selected := make([]domain.Product, 0, count)
	for len(selected) < count && len(remaining) > 0 {
		total := 0
		for _, p := range remaining {
			w := p.Popularity
			if w < 1 {
				w = 1
			}
			total += w
		}

		pick := rng.Intn(total)
		idx := 0
		for i, p := range remaining {
			w := p.Popularity
			if w < 1 {
				w = 1
			}
			pick -= w
			if pick < 0 {
				idx = i
				break
			}
		}

		selected = append(selected, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return selected
}

// stableConfidence maps (image hash, product id) to a confidence in
// [0.55, 0.95], rounded to two decimals.
func stableConfidence(imageHash []byte, productID string) float64 {
	h := sha256.New()
	h.Write(imageHash)
	h.Write([]byte(productID))
	v := binary.BigEndian.Uint64(h.Sum(nil)[:8])

	frac := float64(v) / float64(math.MaxUint64)
	conf := simMinConfidence + simConfidenceSpan*frac
	return math.Round(conf*100) / 100
}
