package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

type ListToolsParams struct {
	CityID     uuid.UUID
	ToolRoomID *uuid.UUID
	Page       int
	PageSize   int
	Search     string
	KitFilter  string
	CalibDue   string
	SortBy     string
	SortOrder  string
}

func (p ListToolsParams) values() url.Values {
	query := url.Values{}
	query.Set("city_id", p.CityID.String())
	if p.ToolRoomID != nil {
		query.Set("tool_room_id", p.ToolRoomID.String())
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	pageSize := p.PageSize
	if pageSize < 1 {
		pageSize = 25
	}
	query.Set("page_size", strconv.Itoa(pageSize))
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	if p.KitFilter != "" {
		query.Set("kit_filter", p.KitFilter)
	}
	if p.CalibDue != "" {
		query.Set("calib_due", p.CalibDue)
	}
	if p.SortBy != "" {
		query.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		query.Set("sort_order", p.SortOrder)
	}
	return query
}

func (c *Client) ListTools(ctx context.Context, params ListToolsParams) (*models.ToolList, error) {
	var out models.ToolList
	if err := c.do(ctx, http.MethodGet, "/api/tools", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTool(ctx context.Context, id uuid.UUID) (*models.ToolDetail, error) {
	var out models.ToolDetail
	if err := c.do(ctx, http.MethodGet, "/api/tools/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListToolRooms returns the tool rooms of one city.
func (c *Client) ListToolRooms(ctx context.Context, cityID uuid.UUID, activeOnly bool) (*models.ToolRoomList, error) {
	query := url.Values{
		"city_id":     {cityID.String()},
		"active_only": {strconv.FormatBool(activeOnly)},
	}
	var out models.ToolRoomList
	if err := c.do(ctx, http.MethodGet, "/api/tool-rooms", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
