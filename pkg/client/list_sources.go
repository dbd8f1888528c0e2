package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/listview"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

// Page sources adapt list endpoints to listview.Fetcher so a
// listview.Controller can drive them straight from URL-derived Params.

func (c *Client) WorkOrderPageSource() listview.Fetcher[models.WorkOrder] {
	return func(ctx context.Context, p listview.Params) (listview.Page[models.WorkOrder], error) {
		cityID, err := uuid.Parse(p.Scope)
		if err != nil {
			return listview.Page[models.WorkOrder]{}, fmt.Errorf("invalid city id %q: %w", p.Scope, err)
		}
		list, err := c.ListWorkOrders(ctx, ListWorkOrdersParams{
			CityID:    cityID,
			Page:      p.Page,
			PageSize:  p.PageSize,
			Search:    p.Filters["search"],
			Status:    models.WorkOrderStatus(p.Filters["status"]),
			SortBy:    p.SortBy,
			SortOrder: string(p.SortOrder),
		})
		if err != nil {
			return listview.Page[models.WorkOrder]{}, err
		}
		return listview.Page[models.WorkOrder]{Items: list.Items, Total: list.Total, HasTotal: true}, nil
	}
}

func (c *Client) AircraftPageSource() listview.Fetcher[models.Aircraft] {
	return func(ctx context.Context, p listview.Params) (listview.Page[models.Aircraft], error) {
		list, err := c.ListAircraft(ctx, ListAircraftParams{
			Page:      p.Page,
			PageSize:  p.PageSize,
			Search:    p.Filters["search"],
			SortBy:    p.SortBy,
			SortOrder: string(p.SortOrder),
		})
		if err != nil {
			return listview.Page[models.Aircraft]{}, err
		}
		return listview.Page[models.Aircraft]{Items: list.Items, Total: list.Total, HasTotal: true}, nil
	}
}

func (c *Client) CustomerPageSource() listview.Fetcher[models.Customer] {
	return func(ctx context.Context, p listview.Params) (listview.Page[models.Customer], error) {
		list, err := c.ListCustomers(ctx, ListCustomersParams{
			Page:      p.Page,
			PageSize:  p.PageSize,
			Search:    p.Filters["search"],
			SortBy:    p.SortBy,
			SortOrder: string(p.SortOrder),
		})
		if err != nil {
			return listview.Page[models.Customer]{}, err
		}
		return listview.Page[models.Customer]{Items: list.Items, Total: list.Total, HasTotal: true}, nil
	}
}

func (c *Client) ToolPageSource() listview.Fetcher[models.Tool] {
	return func(ctx context.Context, p listview.Params) (listview.Page[models.Tool], error) {
		cityID, err := uuid.Parse(p.Scope)
		if err != nil {
			return listview.Page[models.Tool]{}, fmt.Errorf("invalid city id %q: %w", p.Scope, err)
		}
		params := ListToolsParams{
			CityID:    cityID,
			Page:      p.Page,
			PageSize:  p.PageSize,
			Search:    p.Filters["search"],
			KitFilter: p.Filters["kit_filter"],
			CalibDue:  p.Filters["calib_due"],
			SortBy:    p.SortBy,
			SortOrder: string(p.SortOrder),
		}
		if room := p.Filters["tool_room"]; room != "" {
			roomID, err := uuid.Parse(room)
			if err != nil {
				return listview.Page[models.Tool]{}, fmt.Errorf("invalid tool room id %q: %w", room, err)
			}
			params.ToolRoomID = &roomID
		}
		list, err := c.ListTools(ctx, params)
		if err != nil {
			return listview.Page[models.Tool]{}, err
		}
		return listview.Page[models.Tool]{Items: list.Items, Total: list.Total, HasTotal: true}, nil
	}
}

func (c *Client) LaborKitPageSource() listview.Fetcher[models.LaborKit] {
	return func(ctx context.Context, p listview.Params) (listview.Page[models.LaborKit], error) {
		list, err := c.ListLaborKits(ctx)
		if err != nil {
			return listview.Page[models.LaborKit]{}, err
		}
		return listview.Page[models.LaborKit]{Items: list.Items, Total: list.Total, HasTotal: true}, nil
	}
}
