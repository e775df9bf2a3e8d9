package domain

import "errors"

var (
	// ErrUnsupportedFormat is returned when image bytes cannot be decoded
	// as any supported raster format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrPayloadTooLarge is returned when an uploaded image exceeds the
	// configured size ceiling.
	ErrPayloadTooLarge = errors.New("image payload too large")

	// ErrInvalidProductName is returned when a product name is empty or
	// outside the accepted length range after trimming.
	ErrInvalidProductName = errors.New("invalid product name")

	// ErrProductNotFound is returned by a provider that has no data for
	// the queried name. The chain proceeds to the next provider.
	ErrProductNotFound = errors.New("product not found")

	// ErrProviderUnavailable is returned by a provider on transient
	// failure (timeout, 5xx). Tried at most once per lookup.
	ErrProviderUnavailable = errors.New("nutrition provider unavailable")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogUnavailable is fatal at process level: the product catalog
	// could not be loaded at startup.
	ErrCatalogUnavailable = errors.New("product catalog unavailable")
)
