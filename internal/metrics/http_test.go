package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := newTestProvider(t, "http_test")

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider))
	router.POST("/v1/stego/encode", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"stego": "ok"})
	})
	router.DELETE("/v1/keys/:name", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/stego/encode", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	for _, name := range []string{"alpha", "beta"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/keys/"+name, nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	output := scrape(t, provider)

	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="POST".*path="/v1/stego/encode".*status_code="200"`, `3`)
	assertMetricLine(t, output, `http_test_http_requests_total`,
		`method="DELETE".*path="/v1/keys/:name".*status_code="204"`, `2`)
	assertMetricLine(t, output, `http_test_http_request_duration_seconds_count`,
		`method="POST".*path="/v1/stego/encode"`, `3`)
	assertMetricLine(t, output, `http_test_http_requests_in_flight`,
		`path="/v1/stego/encode"`, `0`)
	assert.NotContains(t, output, "/v1/keys/alpha")
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/keys/:name", routeLabel("/v1/keys/:name"))
	assert.Equal(t, "/", routeLabel("/"))
	assert.Equal(t, unmatchedRoute, routeLabel(""))
}
