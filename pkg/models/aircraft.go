package models

import "github.com/google/uuid"

type Aircraft struct {
	ID                 uuid.UUID  `json:"id"`
	RegistrationNumber string     `json:"registration_number"`
	SerialNumber       *string    `json:"serial_number"`
	Make               *string    `json:"make"`
	Model              *string    `json:"model"`
	YearBuilt          *int       `json:"year_built"`
	MeterProfile       *string    `json:"meter_profile"`
	PrimaryCity        *CityBrief `json:"primary_city"`
	CustomerName       *string    `json:"customer_name"`
	AircraftClass      *string    `json:"aircraft_class"`
	FuelCode           *string    `json:"fuel_code"`
	Notes              *string    `json:"notes"`
	IsActive           bool       `json:"is_active"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type AircraftList struct {
	Items    []Aircraft `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type AircraftCreate struct {
	RegistrationNumber string     `json:"registration_number"`
	SerialNumber       *string    `json:"serial_number,omitempty"`
	Make               *string    `json:"make,omitempty"`
	Model              *string    `json:"model,omitempty"`
	YearBuilt          *int       `json:"year_built,omitempty"`
	MeterProfile       *string    `json:"meter_profile,omitempty"`
	PrimaryCityID      *uuid.UUID `json:"primary_city_id,omitempty"`
	CustomerName       *string    `json:"customer_name,omitempty"`
	AircraftClass      *string    `json:"aircraft_class,omitempty"`
	FuelCode           *string    `json:"fuel_code,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
	CreatedBy          *string    `json:"created_by,omitempty"`
}

type AircraftUpdate struct {
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	SerialNumber       *string    `json:"serial_number,omitempty"`
	Make               *string    `json:"make,omitempty"`
	Model              *string    `json:"model,omitempty"`
	YearBuilt          *int       `json:"year_built,omitempty"`
	MeterProfile       *string    `json:"meter_profile,omitempty"`
	PrimaryCityID      *uuid.UUID `json:"primary_city_id,omitempty"`
	CustomerName       *string    `json:"customer_name,omitempty"`
	AircraftClass      *string    `json:"aircraft_class,omitempty"`
	FuelCode           *string    `json:"fuel_code,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	IsActive           *bool      `json:"is_active,omitempty"`
	UpdatedBy          *string    `json:"updated_by,omitempty"`
}
