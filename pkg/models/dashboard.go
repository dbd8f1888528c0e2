package models

import "github.com/google/uuid"

// CityWorkOrderCount feeds the open-work-orders-by-city chart.
type CityWorkOrderCount struct {
	CityID    uuid.UUID `json:"city_id"`
	CityCode  string    `json:"city_code"`
	CityName  string    `json:"city_name"`
	OpenCount int       `json:"open_count"`
}

type WorkOrderCountsByCity struct {
	Items []CityWorkOrderCount `json:"items"`
}
