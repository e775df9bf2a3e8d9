package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"testing"

	"github.com/snackscan/backend/internal/catalog"
	"github.com/snackscan/backend/internal/domain"
)

// stubSignalSource is a stub implementation of domain.ImageSignalSource.
type stubSignalSource struct {
	signals []domain.ImageSignal
	err     error
	called  bool
}

func (s *stubSignalSource) DetectSignals(ctx context.Context, img []byte) ([]domain.ImageSignal, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.signals, nil
}

// testPNG encodes a small solid-color PNG so the decode check passes.
func testPNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func TestRecognizeRejectsBadInput(t *testing.T) {
	svc := NewRecognitionService(nil, testCatalog(t), nil, RecognitionConfig{})
	ctx := context.Background()

	t.Run("empty payload", func(t *testing.T) {
		_, err := svc.Recognize(ctx, nil)
		if !errors.Is(err, domain.ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("non-image payload", func(t *testing.T) {
		_, err := svc.Recognize(ctx, []byte("definitely not an image"))
		if !errors.Is(err, domain.ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestRecognizeSimulation(t *testing.T) {
	svc := NewRecognitionService(nil, testCatalog(t), nil, RecognitionConfig{})
	ctx := context.Background()
	img := testPNG(t, color.RGBA{R: 200, G: 40, B: 40, A: 255})

	candidates, err := svc.Recognize(ctx, img)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}

	t.Run("returns between 2 and 6 candidates", func(t *testing.T) {
		if len(candidates) < 2 || len(candidates) > 6 {
			t.Errorf("len(candidates) = %d, want 2..6", len(candidates))
		}
	})

	t.Run("confidences stay in simulation range", func(t *testing.T) {
		for _, c := range candidates {
			if c.Confidence < 0.55 || c.Confidence > 0.95 {
				t.Errorf("confidence %v for %s out of [0.55, 0.95]", c.Confidence, c.Product.ID)
			}
		}
	})

	t.Run("candidates are sorted by descending confidence", func(t *testing.T) {
		for i := 1; i < len(candidates); i++ {
			if candidates[i].Confidence > candidates[i-1].Confidence {
				t.Errorf("candidates out of order at %d: %v after %v",
					i, candidates[i].Confidence, candidates[i-1].Confidence)
			}
		}
	})

	t.Run("no duplicate products", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range candidates {
			if seen[c.Product.ID] {
				t.Errorf("product %s appears twice", c.Product.ID)
			}
			seen[c.Product.ID] = true
		}
	})

	t.Run("identical bytes give identical results", func(t *testing.T) {
		again, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if !reflect.DeepEqual(candidates, again) {
			t.Error("same image produced different candidate lists")
		}
	})

	t.Run("different bytes can give different results", func(t *testing.T) {
		other, err := svc.Recognize(ctx, testPNG(t, color.RGBA{R: 10, G: 120, B: 220, A: 255}))
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if reflect.DeepEqual(candidates, other) {
			t.Log("two distinct images produced the same list; possible but unlikely")
		}
	})
}

func TestRecognizeWithSignals(t *testing.T) {
	ctx := context.Background()
	img := testPNG(t, color.RGBA{R: 90, G: 90, B: 90, A: 255})

	t.Run("matches detected text against the catalog", func(t *testing.T) {
		source := &stubSignalSource{signals: []domain.ImageSignal{
			{Text: "SNICKERS", Score: 0.92},
			{Text: "milk chocolate peanuts caramel", Score: 0.8},
		}}
		svc := NewRecognitionService(source, testCatalog(t), nil, RecognitionConfig{})

		candidates, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if !source.called {
			t.Fatal("signal source was not consulted")
		}
		if len(candidates) == 0 {
			t.Fatal("expected at least one candidate")
		}
		if candidates[0].Product.ID != "snickers-chocolate-bar" {
			t.Errorf("top candidate = %s, want snickers-chocolate-bar", candidates[0].Product.ID)
		}
		if candidates[0].Confidence > 0.95 {
			t.Errorf("confidence %v exceeds cap", candidates[0].Confidence)
		}
	})

	t.Run("returns empty list when nothing matches", func(t *testing.T) {
		source := &stubSignalSource{signals: []domain.ImageSignal{
			{Text: "zzqx wvvk", Score: 0.9},
		}}
		svc := NewRecognitionService(source, testCatalog(t), nil, RecognitionConfig{})

		candidates, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if len(candidates) != 0 {
			t.Errorf("candidates = %v, want none", candidates)
		}
	})

	t.Run("falls back to simulation when the extractor fails", func(t *testing.T) {
		source := &stubSignalSource{err: errors.New("quota exceeded")}
		svc := NewRecognitionService(source, testCatalog(t), nil, RecognitionConfig{})

		candidates, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v, extractor failures must be absorbed", err)
		}
		if len(candidates) < 2 {
			t.Errorf("len(candidates) = %d, want simulated results", len(candidates))
		}
	})

	t.Run("honors max candidates", func(t *testing.T) {
		source := &stubSignalSource{signals: []domain.ImageSignal{
			// Broad text that brushes against many catalog names.
			{Text: "cola soda water chips chocolate bar energy drink original classic", Score: 0.7},
		}}
		svc := NewRecognitionService(source, testCatalog(t), nil, RecognitionConfig{MaxCandidates: 3})

		candidates, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if len(candidates) > 3 {
			t.Errorf("len(candidates) = %d, want <= 3", len(candidates))
		}
	})

	t.Run("drops candidates below min confidence", func(t *testing.T) {
		source := &stubSignalSource{signals: []domain.ImageSignal{
			{Text: "SNICKERS", Score: 0.9},
		}}
		svc := NewRecognitionService(source, testCatalog(t), nil, RecognitionConfig{MinConfidence: 0.99})

		candidates, err := svc.Recognize(ctx, img)
		if err != nil {
			t.Fatalf("Recognize() error = %v", err)
		}
		if len(candidates) != 0 {
			t.Errorf("candidates = %v, want none above threshold 0.99", candidates)
		}
	})
}

func TestSortCandidates(t *testing.T) {
	candidates := []domain.Candidate{
		{Product: domain.Product{ID: "b", Popularity: 50}, Confidence: 0.8},
		{Product: domain.Product{ID: "a", Popularity: 90}, Confidence: 0.8},
		{Product: domain.Product{ID: "c", Popularity: 99}, Confidence: 0.6},
	}
	sortCandidates(candidates)

	got := []string{candidates[0].Product.ID, candidates[1].Product.ID, candidates[2].Product.ID}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestStableConfidence(t *testing.T) {
	hash := bytes.Repeat([]byte{0xAB}, 32)

	first := stableConfidence(hash, "some-product")
	if first < 0.55 || first > 0.95 {
		t.Errorf("confidence %v out of [0.55, 0.95]", first)
	}
	if again := stableConfidence(hash, "some-product"); again != first {
		t.Errorf("same inputs gave %v then %v", first, again)
	}
	if other := stableConfidence(hash, "other-product"); other == first {
		t.Log("two products share a confidence value; possible but unlikely")
	}
}
