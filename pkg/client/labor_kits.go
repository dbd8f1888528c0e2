package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

func (c *Client) ListLaborKits(ctx context.Context) (*models.LaborKitList, error) {
	var out models.LaborKitList
	if err := c.do(ctx, http.MethodGet, "/api/labor-kits", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLaborKit(ctx context.Context, id uuid.UUID) (*models.LaborKit, error) {
	var out models.LaborKit
	if err := c.do(ctx, http.MethodGet, "/api/labor-kits/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLaborKit(ctx context.Context, input models.LaborKitCreate) (*models.LaborKit, error) {
	var out models.LaborKit
	if err := c.do(ctx, http.MethodPost, "/api/labor-kits", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLaborKit(ctx context.Context, id uuid.UUID, input models.LaborKitUpdate) (*models.LaborKit, error) {
	var out models.LaborKit
	if err := c.do(ctx, http.MethodPut, "/api/labor-kits/"+id.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLaborKit(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/labor-kits/"+id.String(), nil, nil, nil)
}

func (c *Client) ListLaborKitItems(ctx context.Context, kitID uuid.UUID) (*models.LaborKitItemList, error) {
	var out models.LaborKitItemList
	if err := c.do(ctx, http.MethodGet, "/api/labor-kits/"+kitID.String()+"/items", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetLaborKitItem(ctx context.Context, kitID, itemID uuid.UUID) (*models.LaborKitItem, error) {
	var out models.LaborKitItem
	if err := c.do(ctx, http.MethodGet, "/api/labor-kits/"+kitID.String()+"/items/"+itemID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLaborKitItem(ctx context.Context, kitID uuid.UUID, input models.LaborKitItemCreate) (*models.LaborKitItem, error) {
	var out models.LaborKitItem
	if err := c.do(ctx, http.MethodPost, "/api/labor-kits/"+kitID.String()+"/items", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateLaborKitItem(ctx context.Context, kitID, itemID uuid.UUID, input models.LaborKitItemUpdate) (*models.LaborKitItem, error) {
	var out models.LaborKitItem
	if err := c.do(ctx, http.MethodPut, "/api/labor-kits/"+kitID.String()+"/items/"+itemID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteLaborKitItem(ctx context.Context, kitID, itemID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/labor-kits/"+kitID.String()+"/items/"+itemID.String(), nil, nil, nil)
}

// ApplyLaborKit asks the upstream to copy every item of the kit into
// the work order as new line items, in one request with no retries.
// Atomicity is an upstream guarantee; on failure nothing may be
// assumed about partial application. Callers should refetch the work
// order's item list after success rather than merging locally.
func (c *Client) ApplyLaborKit(ctx context.Context, kitID, workOrderID uuid.UUID, createdBy string) (*models.ApplyLaborKitResult, error) {
	query := url.Values{"created_by": {createdBy}}
	var out models.ApplyLaborKitResult
	if err := c.do(ctx, http.MethodPost, "/api/labor-kits/"+kitID.String()+"/apply/"+workOrderID.String(), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
