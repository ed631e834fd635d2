package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dashboard-api/internal/models"
	"github.com/portfolio-dashboard-api/internal/service"
	"github.com/rs/zerolog"
)

// PostHandler handles blog post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "posts").Logger(),
	}
}

// List handles GET /v1/posts
// Public mode returns published posts only; ?include_unpublished=true returns
// everything (the admin view).
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	includeUnpublished := c.Query("include_unpublished") == "true"

	posts, err := h.services.Post.List(ctx, includeUnpublished)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetBySlug handles GET /v1/posts/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.services.Post.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.PostInsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Create(ctx, &in)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// Update handles PATCH /v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var patch models.PostUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.services.Post.Update(ctx, c.Param("id"), &patch)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Publish handles POST /v1/posts/:id/publish
func (h *PostHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()

	post, err := h.services.Post.Publish(ctx, c.Param("id"))
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.services.Post.Delete(ctx, c.Param("id")); err != nil {
		handleServiceError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
