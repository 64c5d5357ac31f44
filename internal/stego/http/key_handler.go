package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/stegotext/internal/httputil"
	"github.com/allisson/stegotext/internal/stego/http/dto"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
	customValidation "github.com/allisson/stegotext/internal/validation"
)

// KeyHandler handles HTTP requests for the server-side key registry.
type KeyHandler struct {
	keyUseCase stegoUseCase.KeyUseCase
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyUseCase stegoUseCase.KeyUseCase, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

// CreateHandler generates and stores a new dynamic key.
// POST /v1/keys
// Returns 201 Created with the key metadata and the plaintext key. The
// plaintext key is never returned again.
func (h *KeyHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	storedKey, key, err := h.keyUseCase.Create(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCreatedKeyToResponse(storedKey, key))
}

// ListHandler lists stored keys with pagination.
// GET /v1/keys?offset=0&limit=50
// Returns 200 OK with key metadata. Key material is never included.
func (h *KeyHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	keys, err := h.keyUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapStoredKeysToListResponse(keys))
}

// DeleteHandler removes a stored key by name.
// DELETE /v1/keys/:name
// Returns 204 No Content.
func (h *KeyHandler) DeleteHandler(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		httputil.HandleValidationErrorGin(c, errors.New("key name cannot be empty"), h.logger)
		return
	}

	if err := h.keyUseCase.Delete(c.Request.Context(), name); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
