package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/httputil"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		url            string
		expectedOffset int
		expectedLimit  int
		errorMsg       string
	}{
		{name: "defaults", url: "/v1/keys", expectedOffset: 0, expectedLimit: httputil.DefaultLimit},
		{name: "empty values use defaults", url: "/v1/keys?offset=&limit=", expectedLimit: httputil.DefaultLimit},
		{name: "custom values", url: "/v1/keys?offset=10&limit=20", expectedOffset: 10, expectedLimit: 20},
		{name: "max limit", url: "/v1/keys?limit=100", expectedLimit: 100},
		{name: "negative offset", url: "/v1/keys?offset=-1", errorMsg: "invalid offset parameter"},
		{name: "non-numeric offset", url: "/v1/keys?offset=abc", errorMsg: "invalid offset parameter"},
		{name: "zero limit", url: "/v1/keys?limit=0", errorMsg: "must be between 1 and 100"},
		{name: "limit over max", url: "/v1/keys?limit=101", errorMsg: "must be between 1 and 100"},
		{name: "non-numeric limit", url: "/v1/keys?limit=ten", errorMsg: "must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			offset, limit, err := httputil.ParsePagination(c)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Zero(t, offset)
				assert.Zero(t, limit)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.NoError(t, httputil.ValidateLimit(1))
	assert.NoError(t, httputil.ValidateLimit(httputil.MaxLimit))
	assert.Error(t, httputil.ValidateLimit(0))
	assert.Error(t, httputil.ValidateLimit(httputil.MaxLimit+1))
}
