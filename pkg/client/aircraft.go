package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

type ListAircraftParams struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
}

func (p ListAircraftParams) values() url.Values {
	query := url.Values{}
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
	if p.SortBy != "" {
		query.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		query.Set("sort_order", p.SortOrder)
	}
	return query
}

func (c *Client) ListAircraft(ctx context.Context, params ListAircraftParams) (*models.AircraftList, error) {
	var out models.AircraftList
	if err := c.do(ctx, http.MethodGet, "/api/aircraft", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAircraft(ctx context.Context, id uuid.UUID) (*models.Aircraft, error) {
	var out models.Aircraft
	if err := c.do(ctx, http.MethodGet, "/api/aircraft/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAircraft(ctx context.Context, input models.AircraftCreate) (*models.Aircraft, error) {
	var out models.Aircraft
	if err := c.do(ctx, http.MethodPost, "/api/aircraft", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAircraft(ctx context.Context, id uuid.UUID, input models.AircraftUpdate) (*models.Aircraft, error) {
	var out models.Aircraft
	if err := c.do(ctx, http.MethodPut, "/api/aircraft/"+id.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAircraft(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/aircraft/"+id.String(), nil, nil, nil)
}
