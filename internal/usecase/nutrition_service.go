package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/snackscan/backend/internal/dataset"
	"github.com/snackscan/backend/internal/domain"
	"github.com/snackscan/backend/internal/logger"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)

// maxProductNameLength bounds accepted product names after trimming.
const maxProductNameLength = 100

// NutritionServiceConfig holds configuration for the nutrition service.
type NutritionServiceConfig struct {
	ProviderTimeout time.Duration // per external call, applied by the chain
	CacheTTL        time.Duration // real-source results
	MockCacheTTL    time.Duration // mock-source results; kept short so a provider coming online is picked up
}

// NutritionService resolves a product name to nutrition facts through an
// ordered provider chain with a guaranteed local fallback. For a
// syntactically valid name it always returns facts; every provider failure
// is absorbed internally.
type NutritionService struct {
	providers       []domain.NutritionProvider
	dataset         *dataset.Dataset
	cache           domain.NutritionCache
	log             *logger.Logger
	providerTimeout time.Duration
	cacheTTL        time.Duration
	mockCacheTTL    time.Duration
}

// NewNutritionService creates a nutrition service. cache may be nil to
// disable caching; providers are tried in slice order.
func NewNutritionService(
	providers []domain.NutritionProvider,
	ds *dataset.Dataset,
	cache domain.NutritionCache,
	log *logger.Logger,
	config NutritionServiceConfig,
) *NutritionService {
	providerTimeout := config.ProviderTimeout
	if providerTimeout <= 0 {
		providerTimeout = 8 * time.Second
	}
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}
	mockTTL := config.MockCacheTTL
	if mockTTL <= 0 {
		mockTTL = 5 * time.Minute
	}

	return &NutritionService{
		providers:       providers,
		dataset:         ds,
		cache:           cache,
		log:             log,
		providerTimeout: providerTimeout,
		cacheTTL:        cacheTTL,
		mockCacheTTL:    mockTTL,
	}
}

// FetchNutrition looks up nutrition facts for a product name.
// Flow: validate -> cache -> provider chain -> dataset fallback -> generic
// estimate. The health score is always recomputed locally before return.
func (s *NutritionService) FetchNutrition(ctx context.Context, name string) (*domain.NutritionFacts, error) {
	trimmed := strings.TrimSpace(name)
	if length := utf8.RuneCountInString(trimmed); length == 0 || length > maxProductNameLength {
		return nil, domain.ErrInvalidProductName
	}

	cacheKey := nutritionCacheKey(trimmed)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			return cached, nil
		}
	}

	terms := OptimizeSearchTerms(trimmed)

	for _, provider := range s.providers {
		if !provider.Configured() {
			s.log.Debug("skipping unconfigured provider", zap.String("provider", provider.Name()))
			continue
		}
		if facts, ok := s.tryProvider(ctx, provider, terms); ok {
			s.log.Info("nutrition resolved",
				zap.String("provider", provider.Name()),
				zap.String("name", trimmed))
			return s.finish(ctx, cacheKey, facts), nil
		}
	}

	// Dataset fallback: a real entry via any search term beats the
	// generic estimate for the literal name.
	for _, term := range terms {
		if facts, real := s.dataset.Lookup(term); real {
			s.log.Info("nutrition resolved from bundled dataset", zap.String("name", trimmed))
			return s.finish(ctx, cacheKey, facts), nil
		}
	}

	s.log.Info("nutrition falling back to generic estimate", zap.String("name", trimmed))
	facts, _ := s.dataset.Lookup(trimmed)
	return s.finish(ctx, cacheKey, facts), nil
}

// tryProvider issues the optimized search terms against one provider. A
// not-found answer advances to the next term; a transient failure ends the
// attempt for this provider entirely (one try per lookup, no retries).
func (s *NutritionService) tryProvider(
	ctx context.Context,
	provider domain.NutritionProvider,
	terms []string,
) (*domain.NutritionFacts, bool) {
	for _, term := range terms {
		callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
		facts, err := provider.TryFetch(callCtx, term)
		cancel()

		switch {
		case err == nil && facts.Valid():
			return facts, true
		case err == nil || errors.Is(err, domain.ErrProductNotFound):
			continue
		default:
			s.log.Warn("provider unavailable",
				zap.String("provider", provider.Name()),
				zap.String("term", term),
				zap.Error(err))
			return nil, false
		}
	}
	return nil, false
}

// finish applies the locally derived health score and caches the result.
// Mock-sourced results use the short TTL.
func (s *NutritionService) finish(ctx context.Context, key string, facts *domain.NutritionFacts) *domain.NutritionFacts {
	facts.HealthScore = Score(facts)

	if s.cache != nil {
		ttl := s.cacheTTL
		if facts.Source == domain.SourceMock {
			ttl = s.mockCacheTTL
		}
		if err := s.cache.Set(ctx, key, facts, ttl); err != nil {
			s.log.Warn("failed to cache nutrition facts", zap.Error(err))
		}
	}

	return facts
}

// nutritionCacheKey normalizes a product name into a cache key. Names that
// normalize to nothing (symbol-only, non-ASCII) key on the raw lowered name
// so distinct products never share an entry.
func nutritionCacheKey(name string) string {
	key := strings.ToLower(name)
	key = nonAlphanumericRegex.ReplaceAllString(key, "")
	key = multiSpaceRegex.ReplaceAllString(key, " ")
	key = strings.TrimSpace(key)
	if key == "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}
	return "nutrition:" + key
}
