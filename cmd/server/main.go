package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/snackscan/backend/config"
	"github.com/snackscan/backend/internal/catalog"
	"github.com/snackscan/backend/internal/dataset"
	httpDelivery "github.com/snackscan/backend/internal/delivery/http"
	"github.com/snackscan/backend/internal/domain"
	"github.com/snackscan/backend/internal/infrastructure/cache"
	"github.com/snackscan/backend/internal/infrastructure/edamam"
	"github.com/snackscan/backend/internal/infrastructure/spoonacular"
	"github.com/snackscan/backend/internal/infrastructure/usda"
	"github.com/snackscan/backend/internal/infrastructure/vision"
	"github.com/snackscan/backend/internal/logger"
	"github.com/snackscan/backend/internal/usecase"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("starting snackscan backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Reference datasets load once and are shared read-only.
	cat, err := catalog.New()
	if err != nil {
		zlog.Error("failed to load product catalog", zap.Error(err))
		log.Fatalf("Failed to load product catalog: %v", err)
	}
	ds := dataset.New()
	zlog.Info("reference data loaded",
		zap.Int("catalog_products", cat.Len()),
		zap.Int("dataset_entries", ds.Len()))

	// Vision extractor is optional; without credentials recognition runs
	// the deterministic simulation.
	var signalSource domain.ImageSignalSource
	visionClient := vision.NewClient(cfg.Vision.APIKey, cfg.Vision.BaseURL)
	if visionClient.Configured() {
		signalSource = visionClient
		zlog.Info("vision extractor configured")
	} else {
		zlog.Info("vision extractor not configured, recognition uses simulation")
	}

	// Provider chain in fixed priority order; unconfigured providers are
	// skipped by the chain before any network call.
	providers := []domain.NutritionProvider{
		usda.NewClient(cfg.Providers.USDA.APIKey, cfg.Providers.USDA.BaseURL),
		edamam.NewClient(cfg.Providers.Edamam.AppID, cfg.Providers.Edamam.AppKey, cfg.Providers.Edamam.BaseURL),
		spoonacular.NewClient(cfg.Providers.Spoonacular.APIKey, cfg.Providers.Spoonacular.BaseURL),
	}
	for _, p := range providers {
		zlog.Info("nutrition provider",
			zap.String("provider", p.Name()),
			zap.Bool("configured", p.Configured()))
	}

	var nutritionCache domain.NutritionCache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			zlog.Error("failed to connect to redis", zap.Error(err))
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		nutritionCache = redisCache
		zlog.Info("redis cache configured")
	case "memory":
		nutritionCache = cache.NewMemoryCache()
		zlog.Info("memory cache configured", zap.Duration("ttl", cfg.Cache.TTL))
	default:
		zlog.Info("nutrition cache disabled")
	}

	recognitionService := usecase.NewRecognitionService(signalSource, cat, zlog, usecase.RecognitionConfig{
		MaxCandidates: cfg.Recognition.MaxCandidates,
		MinConfidence: cfg.Recognition.MinConfidence,
	})

	nutritionService := usecase.NewNutritionService(providers, ds, nutritionCache, zlog, usecase.NutritionServiceConfig{
		ProviderTimeout: cfg.Providers.Timeout,
		CacheTTL:        cfg.Cache.TTL,
		MockCacheTTL:    cfg.Cache.MockTTL,
	})

	handler := httpDelivery.NewHandler(recognitionService, nutritionService, cat, zlog, httpDelivery.HandlerConfig{
		MaxImageBytes:     cfg.Recognition.MaxImageBytes,
		RequireRealSource: cfg.Nutrition.RequireRealSource,
	})

	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		zlog.Error("server stopped", zap.Error(err))
		log.Fatalf("Failed to start server: %v", err)
	}
}
