package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// createCORSMiddleware returns the CORS middleware for a browser front end
// calling the API directly, or nil when CORS is disabled or no usable origin
// is configured.
//
// allowOriginsStr is a comma-separated list of origins such as
// "https://app.example.com". A single "*" allows every origin. The API uses no
// cookies, so credentials are never allowed.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, rejected := parseOrigins(allowOriginsStr)
	for _, origin := range rejected {
		logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == wildcardOrigin {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(config)
}

// parseOrigins splits a comma-separated origin list. Entries that are not a
// bare scheme://host[:port] origin, or a lone "*", are returned in rejected.
func parseOrigins(originsStr string) (origins, rejected []string) {
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if origin == wildcardOrigin || validOrigin(origin) {
			origins = append(origins, origin)
		} else {
			rejected = append(rejected, origin)
		}
	}

	// A wildcard mixed with explicit origins is ambiguous; keep the explicit ones.
	if len(origins) > 1 {
		explicit := origins[:0]
		for _, origin := range origins {
			if origin == wildcardOrigin {
				rejected = append(rejected, origin)
				continue
			}
			explicit = append(explicit, origin)
		}
		origins = explicit
	}

	return origins, rejected
}

func validOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != "" &&
		(u.Path == "" || u.Path == "/") &&
		u.RawQuery == "" && u.Fragment == "" && u.User == nil
}
