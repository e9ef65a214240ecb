package client

import (
	"net/http"

	"github.com/quotedesk/quotedesk/internal/domain"
)

// DashboardStats returns aggregate quotation counts. Admin only.
func (c *Client) DashboardStats() (domain.Stats, error) {
	var response struct {
		Stats domain.Stats `json:"stats"`
	}
	if err := c.doInto("GET", "/dashboard/stats", nil, http.StatusOK, &response); err != nil {
		return domain.Stats{}, err
	}
	return response.Stats, nil
}
