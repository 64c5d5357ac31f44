package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination bounds shared by the HTTP API and the CLI.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// ParsePagination reads the offset and limit query parameters.
// offset defaults to 0 and limit to DefaultLimit; limit must be in [1, MaxLimit].
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = queryInt(c, "limit", DefaultLimit)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be an integer")
	}
	if err := ValidateLimit(limit); err != nil {
		return 0, 0, err
	}

	return offset, limit, nil
}

// ValidateLimit checks that limit is in [1, MaxLimit].
func ValidateLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return fmt.Errorf("invalid limit parameter: must be between 1 and %d", MaxLimit)
	}
	return nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
