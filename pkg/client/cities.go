package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/pkg/models"
)

func (c *Client) ListCities(ctx context.Context, activeOnly bool) (*models.CityList, error) {
	query := url.Values{"active_only": {strconv.FormatBool(activeOnly)}}
	var out models.CityList
	if err := c.do(ctx, http.MethodGet, "/api/cities", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCity(ctx context.Context, id uuid.UUID) (*models.City, error) {
	var out models.City
	if err := c.do(ctx, http.MethodGet, "/api/cities/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
