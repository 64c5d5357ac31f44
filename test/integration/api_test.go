// Package integration provides end-to-end tests for the stego API.
// Tests run against both PostgreSQL and MySQL and are skipped when a database is unavailable.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/stegotext/internal/app"
	"github.com/allisson/stegotext/internal/config"
	"github.com/allisson/stegotext/internal/stego/http/dto"
	"github.com/allisson/stegotext/internal/testutil"
)

// integrationTestContext holds all dependencies and state for integration testing.
type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
	dbDriver  string
}

// makeRequest performs an HTTP request and returns the response and body.
func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	//nolint:gosec // controlled test environment with localhost URLs
	resp, err := client.Do(req)
	require.NoError(t, err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	if closeErr := resp.Body.Close(); closeErr != nil {
		t.Logf("Warning: failed to close response body: %v", closeErr)
	}

	return resp, respBody
}

// setupIntegrationTest initializes all components for integration testing.
func setupIntegrationTest(t *testing.T, dbDriver string) *integrationTestContext {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := testutil.SetupDB(t, dbDriver)
	testutil.TeardownDB(t, db)

	cfg := &config.Config{
		DBDriver:             dbDriver,
		DBConnectionString:   testutil.DSN(dbDriver),
		DBMaxOpenConnections: 10,
		DBMaxIdleConnections: 5,
		DBConnMaxLifetime:    time.Hour,
		ServerHost:           "localhost",
		ServerPort:           8080,
		LogLevel:             "error",
		StorageURL:           "mem://",
		StegoKeySize:         16,
		StegoMaxSecretBytes:  1 << 20,
	}

	container := app.NewContainer(cfg)

	httpSrv, err := container.HTTPServer()
	require.NoError(t, err, "failed to get HTTP server")

	handler := httpSrv.GetHandler()
	require.NotNil(t, handler, "handler should not be nil after SetupRouter")

	return &integrationTestContext{
		container: container,
		server:    httptest.NewServer(handler),
		dbDriver:  dbDriver,
	}
}

// teardownIntegrationTest cleans up all resources.
func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()

	if ctx.server != nil {
		ctx.server.Close()
	}

	if ctx.container != nil {
		if err := ctx.container.Shutdown(context.Background()); err != nil {
			t.Logf("Warning: container shutdown error: %v", err)
		}
	}
}

var drivers = []struct {
	name     string
	dbDriver string
}{
	{"PostgreSQL", "postgres"},
	{"MySQL", "mysql"},
}

// TestIntegration_Health_BasicChecks validates the health and readiness endpoints.
func TestIntegration_Health_BasicChecks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			t.Run("01_HealthCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/health", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)
				assert.JSONEq(t, `{"status":"healthy"}`, string(body))
			})

			t.Run("02_ReadinessCheck", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/ready", nil)
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "ready", response["status"])
			})
		})
	}
}

// TestIntegration_Stego_CompleteFlow registers a key, hides a secret with it,
// recovers the secret, inspects the stego text and deletes the key.
func TestIntegration_Stego_CompleteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	const (
		keyName = "integration-key"
		secret  = "meet at the old bridge"
		cover   = "The quarterly report is attached. Please review the figures before Friday."
	)

	for _, tc := range drivers {
		t.Run(tc.name, func(t *testing.T) {
			ctx := setupIntegrationTest(t, tc.dbDriver)
			defer teardownIntegrationTest(t, ctx)

			var stego string

			t.Run("01_CreateKey", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/keys", dto.CreateKeyRequest{Name: keyName})
				require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

				var response dto.CreateKeyResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, keyName, response.Name)
				assert.Len(t, response.DynamicKey, 32)
				assert.False(t, response.Sealed)
			})

			t.Run("02_CreateDuplicateKey", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/keys", dto.CreateKeyRequest{Name: keyName})
				assert.Equal(t, http.StatusConflict, resp.StatusCode)
			})

			t.Run("03_ListKeys", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/keys", nil)
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var response dto.ListKeysResponse
				require.NoError(t, json.Unmarshal(body, &response))
				require.Len(t, response.Data, 1)
				assert.Equal(t, keyName, response.Data[0].Name)
				assert.NotContains(t, string(body), "dynamic_key")
			})

			t.Run("04_Encode", func(t *testing.T) {
				req := dto.EncodeRequest{
					Secret:      secret,
					Cover:       cover,
					KeySelector: dto.KeySelector{KeyName: keyName},
				}
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/stego/encode", req)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response dto.EncodeResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, len(secret)*8, response.BitCount)
				assert.Equal(t, 0, response.Overflow)
				stego = response.Stego
			})

			t.Run("05_Decode", func(t *testing.T) {
				req := dto.DecodeRequest{Stego: stego, KeySelector: dto.KeySelector{KeyName: keyName}}
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/stego/decode", req)
				require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

				var response dto.DecodeResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, secret, response.Secret)
			})

			t.Run("06_Inspect", func(t *testing.T) {
				resp, body := ctx.makeRequest(t, http.MethodPost, "/v1/stego/inspect", dto.InspectRequest{Stego: stego})
				require.Equal(t, http.StatusOK, resp.StatusCode)

				var response dto.InspectResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.HasPayload)
				assert.Equal(t, len(secret)*8, response.MarkerCount)
				assert.Equal(t, 0, response.TrailingMarkers)
			})

			t.Run("07_DeleteKey", func(t *testing.T) {
				resp, _ := ctx.makeRequest(t, http.MethodDelete, "/v1/keys/"+keyName, nil)
				assert.Equal(t, http.StatusNoContent, resp.StatusCode)

				resp, _ = ctx.makeRequest(t, http.MethodDelete, "/v1/keys/"+keyName, nil)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})

			t.Run("08_DecodeWithDeletedKey", func(t *testing.T) {
				req := dto.DecodeRequest{Stego: stego, KeySelector: dto.KeySelector{KeyName: keyName}}
				resp, _ := ctx.makeRequest(t, http.MethodPost, "/v1/stego/decode", req)
				assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			})
		})
	}
}
