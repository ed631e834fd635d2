package client

import (
	"context"
	"net/http"

	"github.com/portfolio-dashboard-api/internal/models"
)

// Learning mirrors the learning entry collection
type Learning struct {
	*Collection[models.LearningEntry]
}

// Learning creates a learning entry collection
func (c *Client) Learning() *Learning {
	return &Learning{
		Collection: newCollection(c, "/v1/learning", "", func(e models.LearningEntry) string { return e.ID }),
	}
}

// GetLearningEntry fetches a single learning entry by id
func (c *Client) GetLearningEntry(ctx context.Context, id string) (*models.LearningEntry, error) {
	var entry models.LearningEntry
	if err := c.do(ctx, http.MethodGet, "/v1/learning/"+id, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
