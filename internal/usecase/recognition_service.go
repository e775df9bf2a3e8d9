package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	// Raster formats accepted for analysis. Decoders register themselves
	// with the image package; WebP has no stdlib decoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"github.com/snackscan/backend/internal/catalog"
	"github.com/snackscan/backend/internal/domain"
	"github.com/snackscan/backend/internal/logger"
)

// Confidence formula weights for the extractor path. Confidence grows with
// both name-match strength and detection score, boosted by popularity and
// capped below 1.0.
const (
	detectionScoreFloor  = 0.6  // weight of a match backed by a zero-score signal
	detectionScoreWeight = 0.4  // additional weight scaled by the signal score
	popularityBoostScale = 0.1  // boost = popularity/100 * scale
	confidenceCap        = 0.95
	minMatchStrength     = 0.25
)

// RecognitionConfig holds configuration for the recognition service.
type RecognitionConfig struct {
	MaxCandidates int
	MinConfidence float64
}

// RecognitionService turns image bytes into a ranked product candidate
// list. With a signal source configured it matches detected text against
// the catalog; without one, or when the source fails, it falls back to a
// deterministic simulation.
type RecognitionService struct {
	source        domain.ImageSignalSource
	catalog       *catalog.Catalog
	log           *logger.Logger
	maxCandidates int
	minConfidence float64
}

// NewRecognitionService creates a recognition service. source may be nil,
// which selects the simulated path for every request.
func NewRecognitionService(
	source domain.ImageSignalSource,
	cat *catalog.Catalog,
	log *logger.Logger,
	config RecognitionConfig,
) *RecognitionService {
	maxCandidates := config.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = 10
	}
	minConfidence := config.MinConfidence
	if minConfidence <= 0 {
		minConfidence = 0.3
	}

	return &RecognitionService{
		source:        source,
		catalog:       cat,
		log:           log,
		maxCandidates: maxCandidates,
		minConfidence: minConfidence,
	}
}

// Recognize analyzes image bytes and returns candidates sorted by
// descending confidence, capped at the configured maximum. An empty result
// means nothing was detected; it is not an error. Extractor failures are
// absorbed into the simulation fallback and never surface to the caller.
func (s *RecognitionService) Recognize(ctx context.Context, img []byte) ([]domain.Candidate, error) {
	if len(img) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrUnsupportedFormat)
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(img)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	} else if format == "" {
		return nil, domain.ErrUnsupportedFormat
	}

	var candidates []domain.Candidate
	if s.source != nil {
		signals, err := s.source.DetectSignals(ctx, img)
		if err != nil {
			s.log.Warn("signal extractor failed, using simulation", zap.Error(err))
			candidates = simulateCandidates(s.catalog.Products(), img)
		} else {
			s.log.Info("extractor returned signals", zap.Int("signals", len(signals)))
			candidates = s.matchSignals(signals)
		}
	} else {
		candidates = simulateCandidates(s.catalog.Products(), img)
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if c.Confidence >= s.minConfidence {
			filtered = append(filtered, c)
		}
	}

	sortCandidates(filtered)
	if len(filtered) > s.maxCandidates {
		filtered = filtered[:s.maxCandidates]
	}

	return filtered, nil
}

// matchSignals matches detected text tokens against catalog product names
// and aliases, deduplicating by product id with the highest confidence.
func (s *RecognitionService) matchSignals(signals []domain.ImageSignal) []domain.Candidate {
	if len(signals) == 0 {
		return nil
	}

	var combined strings.Builder
	for _, sig := range signals {
		combined.WriteString(strings.ToLower(sig.Text))
		combined.WriteString(" ")
	}
	text := combined.String()

	var candidates []domain.Candidate
	for _, p := range s.catalog.Products() {
		strength := nameMatchStrength(p, text)
		if strength < minMatchStrength {
			continue
		}

		detScore := bestSignalScore(p, signals)
		conf := strength * (detectionScoreFloor + detectionScoreWeight*detScore)
		conf += float64(p.Popularity) / 100 * popularityBoostScale
		if conf > confidenceCap {
			conf = confidenceCap
		}
		conf = math.Round(conf*100) / 100

		candidates = append(candidates, domain.Candidate{Product: p, Confidence: conf})
	}

	return candidates
}

// nameMatchStrength scores how well a product's name variants appear in
// the detected text: full word matches count 1, 3-gram partial matches of
// longer words count 0.3, normalized by word count. Best variant wins.
func nameMatchStrength(p domain.Product, text string) float64 {
	variants := make([]string, 0, len(p.Aliases)+1)
	variants = append(variants, strings.ToLower(p.Name))
	for _, a := range p.Aliases {
		variants = append(variants, strings.ToLower(a))
	}

	best := 0.0
	for _, variant := range variants {
		words := strings.Fields(variant)
		if len(words) == 0 {
			continue
		}

		matched := 0.0
		for _, word := range words {
			if strings.Contains(text, word) {
				matched++
				continue
			}
			if len(word) >= 3 {
				for i := 0; i+3 <= len(word); i++ {
					if strings.Contains(text, word[i:i+3]) {
						matched += 0.3
						break
					}
				}
			}
		}

		strength := matched / float64(len(words))
		if strength > best {
			best = strength
		}
	}

	if best > 1 {
		best = 1
	}
	return best
}

// bestSignalScore returns the highest detection score among signals whose
// text mentions the product. Signals without scores count as neutral.
func bestSignalScore(p domain.Product, signals []domain.ImageSignal) float64 {
	words := strings.Fields(strings.ToLower(p.Name))
	for _, a := range p.Aliases {
		words = append(words, strings.Fields(strings.ToLower(a))...)
	}

	best := 0.0
	for _, sig := range signals {
		text := strings.ToLower(sig.Text)
		for _, w := range words {
			if strings.Contains(text, w) {
				score := sig.Score
				if score <= 0 {
					score = 0.5
				}
				if score > best {
					best = score
				}
				break
			}
		}
	}
	return best
}

// sortCandidates orders by descending confidence, ties broken by
// descending popularity, then id for stability.
func sortCandidates(candidates []domain.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		if candidates[i].Product.Popularity != candidates[j].Product.Popularity {
			return candidates[i].Product.Popularity > candidates[j].Product.Popularity
		}
		return candidates[i].Product.ID < candidates[j].Product.ID
	})
}
