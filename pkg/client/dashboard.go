package client

import (
	"context"
	"net/http"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

// GetWorkOrderCountsByCity feeds the dashboard chart of open work
// orders per city.
func (c *Client) GetWorkOrderCountsByCity(ctx context.Context) (*models.WorkOrderCountsByCity, error) {
	var out models.WorkOrderCountsByCity
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/work-order-counts-by-city", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
