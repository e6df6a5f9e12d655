// Package api exposes the game over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"GO-dungeon/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Game is the part of *game.Game the handler drives.
type Game interface {
	State() game.State
	Start(ctx context.Context) error
	Submit(ctx context.Context, text string) (game.Message, error)
}

// Handler serves the two game commands and the state snapshot.
type Handler struct {
	game   Game
	logger *zap.Logger
}

func NewHandler(g Game, logger *zap.Logger) *Handler {
	return &Handler{game: g, logger: logger}
}

type turnRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string     `json:"error"`
	State game.State `json:"state"`
}

// Router builds the gin engine. gatherer may be nil to leave out /metrics.
func (h *Handler) Router(gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.GET("/state", h.getState)
	api.POST("/start", h.start)
	api.POST("/turns", h.submitTurn)
	return r
}

func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.game.State())
}

func (h *Handler) start(c *gin.Context) {
	// Remote calls cannot be canceled; a client that hangs up must not leave
	// the game half started.
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.game.Start(ctx); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.game.State())
}

func (h *Handler) submitTurn(c *gin.Context) {
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body for submitTurn", zap.Error(err))
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", State: h.game.State()})
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	if _, err := h.game.Submit(ctx, req.Text); err != nil && !errors.Is(err, game.ErrInvalidInput) {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.game.State())
}

func (h *Handler) fail(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("Game command failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(code, errorResponse{Error: err.Error(), State: h.game.State()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrBusy),
		errors.Is(err, game.ErrNotStarted),
		errors.Is(err, game.ErrAlreadyStarted):
		return http.StatusConflict
	case errors.Is(err, game.ErrConfiguration):
		return http.StatusServiceUnavailable
	case errors.Is(err, game.ErrRemoteCall):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.logger.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
