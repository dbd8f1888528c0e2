package models

import "github.com/google/uuid"

type City struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// CityBrief is the nested city shape embedded in other responses.
type CityBrief struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

type CityList struct {
	Items []City `json:"items"`
	Total int    `json:"total"`
}
