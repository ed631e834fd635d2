package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

// ProjectHandler handles experiment project endpoints
type ProjectHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(services *service.Services, log zerolog.Logger) *ProjectHandler {
	return &ProjectHandler{
		services: services,
		log:      log.With().Str("handler", "projects").Logger(),
	}
}

// List handles GET /v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.services.Project.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.services.Project.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create handles POST /v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var in models.ProjectInsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.services.Project.Create(c.Request.Context(), &in)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update handles PATCH /v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var patch models.ProjectUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.services.Project.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.services.Project.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
