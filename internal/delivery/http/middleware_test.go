package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"http://localhost:3000", "chrome-extension://*"}

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(CORSMiddleware(allowed))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("sets headers for an allowed origin", func(t *testing.T) {
		router := newRouter()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q, want the request origin", got)
		}
	})

	t.Run("matches wildcard suffix origins", func(t *testing.T) {
		router := newRouter()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "chrome-extension://abcdef123456")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "chrome-extension://abcdef123456" {
			t.Errorf("Allow-Origin = %q, want the extension origin", got)
		}
	})

	t.Run("ignores a disallowed origin", func(t *testing.T) {
		router := newRouter()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("answers preflight with 204", func(t *testing.T) {
		router := newRouter()
		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an id when none supplied", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("no X-Request-ID header set")
		}
	})

	t.Run("honors a caller-supplied id", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "caller-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "caller-id-123" {
			t.Errorf("X-Request-ID = %q, want caller-id-123", got)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(1, 2))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.1.2.3:55555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Burst of 2 passes, the third request is throttled.
	if code := hit(); code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", code)
	}
	if code := hit(); code != http.StatusOK {
		t.Errorf("second request status = %d, want 200", code)
	}
	if code := hit(); code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", code)
	}
}

func TestIPRateLimiterIsolation(t *testing.T) {
	limiter := newIPRateLimiter(1, 1)

	if !limiter.get("10.0.0.1").Allow() {
		t.Error("first client's first request was throttled")
	}
	if limiter.get("10.0.0.1").Allow() {
		t.Error("first client's second request was allowed within the same second")
	}
	if !limiter.get("10.0.0.2").Allow() {
		t.Error("second client shares the first client's bucket")
	}
}
