package client

import (
	"context"
	"net/http"

	"github.com/portfolio-dashboard-api/internal/models"
)

// Posts mirrors the blog post collection
type Posts struct {
	*Collection[models.Post]
}

// Posts creates a post collection. includeUnpublished selects the admin view;
// the public view returns published posts only.
func (c *Client) Posts(includeUnpublished bool) *Posts {
	query := ""
	if includeUnpublished {
		query = "?include_unpublished=true"
	}
	return &Posts{
		Collection: newCollection(c, "/v1/posts", query, func(p models.Post) string { return p.ID }),
	}
}

// Publish transitions a post to PUBLISHED. The server sets the publish
// timestamp on the first transition only.
func (p *Posts) Publish(ctx context.Context, id string) (models.Post, error) {
	return p.transition(ctx, id, "publish")
}

// GetPost fetches a single post by slug
func (c *Client) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/v1/posts/"+slug, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
