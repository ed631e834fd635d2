package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

// StatsHandler handles the analytics aggregation endpoints
type StatsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(services *service.Services, log zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		services: services,
		log:      log.With().Str("handler", "stats").Logger(),
	}
}

// GitHub handles GET /v1/stats/github
// Missing credentials reject the request before any upstream call is made.
func (h *StatsHandler) GitHub(c *gin.Context) {
	hasToken, hasUsername := h.services.GitHub.Configured()
	if !hasToken || !hasUsername {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "GitHub credentials not configured",
			"debug": gin.H{
				"hasToken":    hasToken,
				"hasUsername": hasUsername,
			},
		})
		return
	}

	stats, err := h.services.GitHub.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("GitHub aggregation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch GitHub data"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// WakaTime handles GET /v1/stats/wakatime?range=...&endpoint=stats|summaries
// This endpoint never returns an error status: the service substitutes demo
// data for every failure mode.
func (h *StatsHandler) WakaTime(c *gin.Context) {
	ctx := c.Request.Context()
	rng := c.DefaultQuery("range", service.DefaultWakaTimeRange)
	endpoint := c.DefaultQuery("endpoint", "stats")

	if endpoint == "summaries" {
		c.JSON(http.StatusOK, h.services.WakaTime.Summaries(ctx))
		return
	}
	c.JSON(http.StatusOK, h.services.WakaTime.Stats(ctx, rng))
}
