package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

type ListCustomersParams struct {
	Page      int
	PageSize  int
	Search    string
	SortBy    string
	SortOrder string
}

func (p ListCustomersParams) values() url.Values {
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

func (c *Client) ListCustomers(ctx context.Context, params ListCustomersParams) (*models.CustomerList, error) {
	var out models.CustomerList
	if err := c.do(ctx, http.MethodGet, "/api/customers", params.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, input models.CustomerCreate) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id uuid.UUID, input models.CustomerUpdate) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+id.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/customers/"+id.String(), nil, nil, nil)
}

func (c *Client) ListCustomerAircraft(ctx context.Context, customerID uuid.UUID) (*models.CustomerAircraftList, error) {
	var out models.CustomerAircraftList
	if err := c.do(ctx, http.MethodGet, "/api/customers/"+customerID.String()+"/aircraft", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReplaceCustomerAircraft swaps the customer's linked aircraft set.
func (c *Client) ReplaceCustomerAircraft(ctx context.Context, customerID uuid.UUID, aircraftIDs []uuid.UUID) (*models.CustomerAircraftList, error) {
	body := map[string][]uuid.UUID{"aircraft_ids": aircraftIDs}
	var out models.CustomerAircraftList
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+customerID.String()+"/aircraft", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LinkCustomerAircraft(ctx context.Context, customerID, aircraftID uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/customers/"+customerID.String()+"/aircraft/"+aircraftID.String(), nil, nil, nil)
}

func (c *Client) UnlinkCustomerAircraft(ctx context.Context, customerID, aircraftID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/customers/"+customerID.String()+"/aircraft/"+aircraftID.String(), nil, nil, nil)
}

// SetPrimaryCustomerAircraft marks the link as the aircraft's primary
// customer; the at-most-one-primary rule is enforced upstream.
func (c *Client) SetPrimaryCustomerAircraft(ctx context.Context, customerID, aircraftID uuid.UUID) error {
	return c.do(ctx, http.MethodPut, "/api/customers/"+customerID.String()+"/aircraft/"+aircraftID.String()+"/primary", nil, nil, nil)
}
