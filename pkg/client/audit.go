package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

// GetCombinedWorkOrderHistory returns the merged audit trail of a work
// order and its items, newest first.
func (c *Client) GetCombinedWorkOrderHistory(ctx context.Context, workOrderID uuid.UUID, page, pageSize int) (*models.AuditRecordList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	query := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}
	var out models.AuditRecordList
	if err := c.do(ctx, http.MethodGet, "/api/audit/work-order/"+workOrderID.String()+"/combined", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEntityHistory(ctx context.Context, entityType string, entityID uuid.UUID) (*models.AuditRecordList, error) {
	var out models.AuditRecordList
	if err := c.do(ctx, http.MethodGet, "/api/audit/"+entityType+"/"+entityID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
