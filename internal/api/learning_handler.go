package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

// LearningHandler handles learning entry endpoints
type LearningHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(services *service.Services, log zerolog.Logger) *LearningHandler {
	return &LearningHandler{
		services: services,
		log:      log.With().Str("handler", "learning").Logger(),
	}
}

// List handles GET /v1/learning
func (h *LearningHandler) List(c *gin.Context) {
	entries, err := h.services.Learning.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get handles GET /v1/learning/:id
func (h *LearningHandler) Get(c *gin.Context) {
	entry, err := h.services.Learning.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "learning entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create handles POST /v1/learning
func (h *LearningHandler) Create(c *gin.Context) {
	var in models.LearningEntryInsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.services.Learning.Create(c.Request.Context(), &in)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update handles PATCH /v1/learning/:id
func (h *LearningHandler) Update(c *gin.Context) {
	var patch models.LearningEntryUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.services.Learning.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "learning entry not found"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/learning/:id
func (h *LearningHandler) Delete(c *gin.Context) {
	if err := h.services.Learning.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
