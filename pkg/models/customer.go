package models

import "github.com/google/uuid"

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	PhoneType *string   `json:"phone_type"`
	Address   *string   `json:"address"`
	Address2  *string   `json:"address_2"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	Zip       *string   `json:"zip"`
	Country   *string   `json:"country"`
	Notes     *string   `json:"notes"`
	IsActive  bool      `json:"is_active"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CustomerList struct {
	Items    []Customer `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

type CustomerCreate struct {
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PhoneType *string `json:"phone_type,omitempty"`
	Address   *string `json:"address,omitempty"`
	Address2  *string `json:"address_2,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Zip       *string `json:"zip,omitempty"`
	Country   *string `json:"country,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	CreatedBy string  `json:"created_by"`
}

type CustomerUpdate struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PhoneType *string `json:"phone_type,omitempty"`
	Address   *string `json:"address,omitempty"`
	Address2  *string `json:"address_2,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Zip       *string `json:"zip,omitempty"`
	Country   *string `json:"country,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	UpdatedBy *string `json:"updated_by,omitempty"`
}

// CustomerAircraftLink is one row of the customer/aircraft join. At
// most one customer is primary per aircraft, enforced upstream.
type CustomerAircraftLink struct {
	AircraftID         uuid.UUID `json:"aircraft_id"`
	RegistrationNumber string    `json:"registration_number"`
	IsPrimary          bool      `json:"is_primary"`
}

type CustomerAircraftList struct {
	Items []CustomerAircraftLink `json:"items"`
	Total int                    `json:"total"`
}
