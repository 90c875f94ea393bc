package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/models"
	"github.com/sebasr/hello-service/internal/repository"
	"github.com/sebasr/hello-service/internal/service"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(_ context.Context) error {
	return s.err
}

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               "8080",
			ApplicationName:    "Test Greeter",
			CORSAllowedOrigins: []string{"*"},
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Period: time.Minute},
		Log:       config.LogConfig{Level: "info"},
	}
}

func newTestDeps() (*Dependencies, *repository.MockGreetingRepository) {
	repo := repository.NewMockGreetingRepository()
	return &Dependencies{
		Config:          newTestConfig(),
		Logger:          zap.NewNop(),
		GreetingService: service.NewGreetingService(repo, zap.NewNop()),
		Health:          stubHealthChecker{},
	}, repo
}

func TestRoutes_MirroredUnderBothPrefixes(t *testing.T) {
	deps, repo := newTestDeps()
	repo.CountFunc = func(_ context.Context) (int64, error) { return 3, nil }
	router := New(deps)

	paths := []string{
		"/hello?name=John",
		"/hello/formal?name=Jane",
		"/hello/greetings",
		"/hello/greetings/by-name?name=John",
		"/hello/greetings/search?q=jo",
		"/hello/greetings/by-prefix?prefix=J",
		"/hello/greetings/exists?name=John",
		"/hello/stats",
		"/hello/count?name=John",
		"/hello/health",
	}

	for _, path := range paths {
		for _, prefix := range []string{"", "/api"} {
			t.Run(prefix+path, func(t *testing.T) {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, prefix+path, nil))
				assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			})
		}
	}
}

func TestRoutes_StaticPathsWinOverID(t *testing.T) {
	deps, repo := newTestDeps()
	findByIDCalled := false
	repo.FindByIDFunc = func(_ context.Context, _ int64) (*models.Greeting, error) {
		findByIDCalled = true
		return nil, repository.ErrGreetingNotFound
	}
	router := New(deps)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/greetings/by-name", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, findByIDCalled)
}

func TestHealthEndpoint(t *testing.T) {
	deps, _ := newTestDeps()
	router := New(deps)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","application":"Test Greeter"}`, w.Body.String())
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		deps, _ := newTestDeps()
		router := New(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("down", func(t *testing.T) {
		deps, _ := newTestDeps()
		deps.Health = stubHealthChecker{err: errors.New("connection refused")}
		router := New(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestNonExistentRoute(t *testing.T) {
	deps, _ := newTestDeps()
	router := New(deps)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Resource not found", response["error"])
}

func TestRequestIDHeader(t *testing.T) {
	deps, _ := newTestDeps()
	router := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/hello/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSHeaders(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Config.Server.CORSAllowedOrigins = []string{"https://app.example.com"}
	router := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/hello/health", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGzipResponse(t *testing.T) {
	deps, _ := newTestDeps()
	router := New(deps)

	req := httptest.NewRequest(http.MethodGet, "/hello?name=John", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	defer reader.Close()
	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	var response map[string]any
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, "Hello, John!", response["message"])
}

func TestRateLimit(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Config.RateLimit = config.RateLimitConfig{Requests: 2, Period: time.Minute}
	router := New(deps)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hello/stats", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func init() {
	gin.SetMode(gin.TestMode)
}
