package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/snackscan/backend/internal/catalog"
	"github.com/snackscan/backend/internal/domain"
	"github.com/snackscan/backend/internal/logger"
	"github.com/snackscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	recognition       *usecase.RecognitionService
	nutrition         *usecase.NutritionService
	catalog           *catalog.Catalog
	log               *logger.Logger
	maxImageBytes     int64
	requireRealSource bool
}

// HandlerConfig holds the boundary behavior knobs.
type HandlerConfig struct {
	MaxImageBytes     int64
	RequireRealSource bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	recognition *usecase.RecognitionService,
	nutrition *usecase.NutritionService,
	cat *catalog.Catalog,
	log *logger.Logger,
	config HandlerConfig,
) *Handler {
	maxImageBytes := config.MaxImageBytes
	if maxImageBytes <= 0 {
		maxImageBytes = 16 * 1024 * 1024
	}

	return &Handler{
		recognition:       recognition,
		nutrition:         nutrition,
		catalog:           cat,
		log:               log,
		maxImageBytes:     maxImageBytes,
		requireRealSource: config.RequireRealSource,
	}
}

// productResponse is the wire shape of a product, with confidence set for
// recognition results.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Confidence  float64 `json:"confidence,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Popularity  int     `json:"popularity"`
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "snackscan-backend",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeImage handles vending machine photo uploads and returns the
// ranked product candidates. Zero candidates is a success with count 0,
// never an error.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "no image file provided",
		})
		return
	}
	defer file.Close()

	if header.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "empty image upload",
		})
		return
	}
	if header.Size > h.maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   domain.ErrPayloadTooLarge.Error(),
		})
		return
	}

	img, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "failed to read image upload",
		})
		return
	}
	if int64(len(img)) > h.maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"error":   domain.ErrPayloadTooLarge.Error(),
		})
		return
	}

	candidates, err := h.recognition.Recognize(c.Request.Context(), img)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{
				"success": false,
				"error":   "unsupported image format",
			})
			return
		}
		h.log.Error("image analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to analyze image",
		})
		return
	}

	products := make([]productResponse, 0, len(candidates))
	for _, cand := range candidates {
		products = append(products, productResponse{
			ID:          cand.Product.ID,
			Name:        cand.Product.Name,
			Confidence:  cand.Confidence,
			Category:    cand.Product.Category,
			Description: cand.Product.Description,
			Popularity:  cand.Product.Popularity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}

// GetNutrition handles nutrition lookups by product name. The core always
// resolves valid names; 404 only happens in strict mode when nothing but
// the mock fallback had data.
func (h *Handler) GetNutrition(c *gin.Context) {
	name := c.Param("name")

	facts, err := h.nutrition.FetchNutrition(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProductName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "product name must be 1-100 characters",
			})
			return
		}
		h.log.Error("nutrition lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to get nutrition data",
		})
		return
	}

	if h.requireRealSource && facts.Source == domain.SourceMock {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "nutrition data not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"nutrition": facts,
	})
}

// ListProducts returns the full product catalog sorted by popularity.
func (h *Handler) ListProducts(c *gin.Context) {
	all := h.catalog.ByPopularity()

	products := make([]productResponse, 0, len(all))
	for _, p := range all {
		products = append(products, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Popularity:  p.Popularity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(products),
		"products": products,
	})
}
