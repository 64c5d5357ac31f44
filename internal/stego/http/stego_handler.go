// Package http provides HTTP handlers for steganographic encoding, decoding,
// inspection and server-side key management.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/stegotext/internal/httputil"
	"github.com/allisson/stegotext/internal/stego/domain"
	"github.com/allisson/stegotext/internal/stego/http/dto"
	stegoUseCase "github.com/allisson/stegotext/internal/stego/usecase"
	customValidation "github.com/allisson/stegotext/internal/validation"
)

// StegoHandler handles HTTP requests for encode, decode and inspect operations.
type StegoHandler struct {
	stegoUseCase stegoUseCase.StegoUseCase
	keyUseCase   stegoUseCase.KeyUseCase
	logger       *slog.Logger
}

// NewStegoHandler creates a new stego handler with required dependencies.
func NewStegoHandler(
	stegoUseCase stegoUseCase.StegoUseCase,
	keyUseCase stegoUseCase.KeyUseCase,
	logger *slog.Logger,
) *StegoHandler {
	return &StegoHandler{
		stegoUseCase: stegoUseCase,
		keyUseCase:   keyUseCase,
		logger:       logger,
	}
}

// EncodeHandler hides a secret inside a cover text.
// POST /v1/stego/encode
// Returns 200 OK with the stego text and embedding statistics.
func (h *StegoHandler) EncodeHandler(c *gin.Context) {
	var req dto.EncodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.resolveKey(c.Request.Context(), req.KeySelector)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	output, err := h.stegoUseCase.Encode(c.Request.Context(), &domain.EncodeInput{
		Secret: req.Secret,
		Cover:  req.Cover,
		Key:    key,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncodeOutputToResponse(output))
}

// DecodeHandler recovers a secret from a stego text.
// POST /v1/stego/decode
// Returns 200 OK with the recovered secret.
func (h *StegoHandler) DecodeHandler(c *gin.Context) {
	var req dto.DecodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.resolveKey(c.Request.Context(), req.KeySelector)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	secret, err := h.stegoUseCase.Decode(c.Request.Context(), &domain.DecodeInput{
		Stego: req.Stego,
		Key:   key,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecodeResponse{Secret: secret})
}

// InspectHandler reports on the marker glyphs in a text without a key.
// POST /v1/stego/inspect
// Returns 200 OK with an inspection report.
func (h *StegoHandler) InspectHandler(c *gin.Context) {
	var req dto.InspectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	report, err := h.stegoUseCase.Inspect(c.Request.Context(), req.Stego)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapInspectionReportToResponse(report))
}

// resolveKey turns a key selector into a key. It returns nil when neither an
// inline key nor a key name was given.
func (h *StegoHandler) resolveKey(ctx context.Context, sel dto.KeySelector) (*domain.Key, error) {
	switch {
	case sel.DynamicKey != "":
		key, err := domain.ParseKey(sel.DynamicKey)
		if err != nil {
			return nil, err
		}
		return &key, nil
	case sel.KeyName != "":
		key, err := h.keyUseCase.Get(ctx, sel.KeyName)
		if err != nil {
			return nil, err
		}
		return &key, nil
	default:
		return nil, nil
	}
}
