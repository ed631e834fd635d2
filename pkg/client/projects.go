package client

import (
	"context"
	"net/http"

	"github.com/portfolio-dashboard-api/internal/models"
)

// Projects mirrors the experiment project collection
type Projects struct {
	*Collection[models.Project]
}

// Projects creates a project collection
func (c *Client) Projects() *Projects {
	return &Projects{
		Collection: newCollection(c, "/v1/projects", "", func(p models.Project) string { return p.ID }),
	}
}

// GetProject fetches a single project by id
func (c *Client) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, "/v1/projects/"+id, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
