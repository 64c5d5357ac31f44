package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSRouter(t *testing.T, enabled bool, origins string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if middleware := createCORSMiddleware(enabled, origins, slog.New(slog.NewTextHandler(io.Discard, nil))); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/v1/stego/encode", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"stego": "ok"})
	})

	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger), "disabled")
	assert.Nil(t, createCORSMiddleware(true, "", logger), "no origins")
	assert.Nil(t, createCORSMiddleware(true, "not-an-origin, ftp://files.example.com", logger), "only invalid origins")
	assert.NotNil(t, createCORSMiddleware(true, " https://app.example.com , https://admin.example.com ", logger))
	assert.NotNil(t, createCORSMiddleware(true, "*", logger))
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		origins  []string
		rejected []string
	}{
		{name: "empty", input: ""},
		{
			name:    "comma separated with whitespace",
			input:   " https://app.example.com , http://localhost:3000 ,",
			origins: []string{"https://app.example.com", "http://localhost:3000"},
		},
		{
			name:     "invalid entries rejected",
			input:    "https://app.example.com,app.example.com,https://app.example.com/path,ftp://x.example.com",
			origins:  []string{"https://app.example.com"},
			rejected: []string{"app.example.com", "https://app.example.com/path", "ftp://x.example.com"},
		},
		{name: "wildcard", input: "*", origins: []string{"*"}},
		{
			name:     "wildcard mixed with explicit origin",
			input:    "*,https://app.example.com",
			origins:  []string{"https://app.example.com"},
			rejected: []string{"*"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origins, rejected := parseOrigins(tt.input)
			assert.Equal(t, tt.origins, origins)
			assert.Equal(t, tt.rejected, rejected)
		})
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	router := newCORSRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/stego/encode", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_DisabledAddsNoHeaders(t *testing.T) {
	router := newCORSRouter(t, false, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/stego/encode", nil)
	req.Header.Set("Origin", "https://app.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := newCORSRouter(t, true, "https://app.example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/v1/stego/encode", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORS_Wildcard(t *testing.T) {
	router := newCORSRouter(t, true, "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/stego/encode", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
