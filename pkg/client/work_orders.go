package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

// ListWorkOrdersParams narrows a work order list request. CityID is
// required by the upstream.
type ListWorkOrdersParams struct {
	CityID    uuid.UUID
	Page      int
	PageSize  int
	Search    string
	Status    models.WorkOrderStatus
	SortBy    string
	SortOrder string
}

func (p ListWorkOrdersParams) values() url.Values {
	query := url.Values{}
	query.Set("city_id", p.CityID.String())
	page := p.Page
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	query.Set("page_size", strconv.Itoa(pageSize))
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	if p.Status != "" {
		query.Set("status", string(p.Status))
	}
	if p.SortBy != "" {
		query.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		query.Set("sort_order", p.SortOrder)
	}
	return query
}

func (c *Client) ListWorkOrders(ctx context.Context, params ListWorkOrdersParams) (*models.WorkOrderList, error) {
	var out models.WorkOrderList
	if err := c.do(ctx, http.MethodGet, "/api/work-orders", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWorkOrder(ctx context.Context, id uuid.UUID) (*models.WorkOrder, error) {
	var out models.WorkOrder
	if err := c.do(ctx, http.MethodGet, "/api/work-orders/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkOrder(ctx context.Context, input models.WorkOrderCreate) (*models.WorkOrder, error) {
	var out models.WorkOrder
	if err := c.do(ctx, http.MethodPost, "/api/work-orders", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkOrder(ctx context.Context, id uuid.UUID, input models.WorkOrderUpdate) (*models.WorkOrder, error) {
	var out models.WorkOrder
	if err := c.do(ctx, http.MethodPut, "/api/work-orders/"+id.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkOrder(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/work-orders/"+id.String(), nil, nil, nil)
}

// ListWorkOrderItems returns every line item of a work order, sorted
// upstream when sortBy is set.
func (c *Client) ListWorkOrderItems(ctx context.Context, workOrderID uuid.UUID, sortBy, sortOrder string) (*models.WorkOrderItemList, error) {
	query := url.Values{}
	if sortBy != "" {
		query.Set("sort_by", sortBy)
	}
	if sortOrder != "" {
		query.Set("sort_order", sortOrder)
	}
	var out models.WorkOrderItemList
	if err := c.do(ctx, http.MethodGet, "/api/work-orders/"+workOrderID.String()+"/items", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWorkOrderItem(ctx context.Context, workOrderID, itemID uuid.UUID) (*models.WorkOrderItem, error) {
	var out models.WorkOrderItem
	if err := c.do(ctx, http.MethodGet, "/api/work-orders/"+workOrderID.String()+"/items/"+itemID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkOrderItem(ctx context.Context, workOrderID uuid.UUID, input models.WorkOrderItemCreate) (*models.WorkOrderItem, error) {
	var out models.WorkOrderItem
	if err := c.do(ctx, http.MethodPost, "/api/work-orders/"+workOrderID.String()+"/items", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkOrderItem(ctx context.Context, workOrderID, itemID uuid.UUID, input models.WorkOrderItemUpdate) (*models.WorkOrderItem, error) {
	var out models.WorkOrderItem
	if err := c.do(ctx, http.MethodPut, "/api/work-orders/"+workOrderID.String()+"/items/"+itemID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkOrderItem(ctx context.Context, workOrderID, itemID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/work-orders/"+workOrderID.String()+"/items/"+itemID.String(), nil, nil, nil)
}
