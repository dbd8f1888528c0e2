package models

import "github.com/google/uuid"

type WorkOrderStatus string

const (
	WorkOrderStatusCreated    WorkOrderStatus = "created"
	WorkOrderStatusScheduled  WorkOrderStatus = "scheduled"
	WorkOrderStatusOpen       WorkOrderStatus = "open"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusTracking   WorkOrderStatus = "tracking"
	WorkOrderStatusPending    WorkOrderStatus = "pending"
	WorkOrderStatusInReview   WorkOrderStatus = "in_review"
	WorkOrderStatusCompleted  WorkOrderStatus = "completed"
	WorkOrderStatusVoid       WorkOrderStatus = "void"
)

type WorkOrderType string

const (
	WorkOrderTypeWorkOrder WorkOrderType = "work_order"
	WorkOrderTypeQuote     WorkOrderType = "quote"
)

type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityNormal PriorityLevel = "normal"
	PriorityHigh   PriorityLevel = "high"
	PriorityUrgent PriorityLevel = "urgent"
)

// AircraftBrief is the aircraft summary embedded in work order responses.
type AircraftBrief struct {
	ID                 uuid.UUID `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	SerialNumber       *string   `json:"serial_number"`
	Make               *string   `json:"make"`
	Model              *string   `json:"model"`
	YearBuilt          *int      `json:"year_built"`
}

// WorkOrder mirrors the upstream work order response. The work order
// number is generated upstream from the city code and sequence; it is
// never computed here. Dates stay as wire strings since the upstream
// serializes naive datetimes.
type WorkOrder struct {
	ID               uuid.UUID       `json:"id"`
	WorkOrderNumber  string          `json:"work_order_number"`
	SequenceNumber   int             `json:"sequence_number"`
	City             CityBrief       `json:"city"`
	Aircraft         AircraftBrief   `json:"aircraft"`
	WorkOrderType    WorkOrderType   `json:"work_order_type"`
	Status           WorkOrderStatus `json:"status"`
	StatusNotes      *string         `json:"status_notes"`
	CustomerName     *string         `json:"customer_name"`
	CustomerPONumber *string         `json:"customer_po_number"`
	DueDate          *string         `json:"due_date"`
	CreatedDate      string          `json:"created_date"`
	CompletedDate    *string         `json:"completed_date"`
	LeadTechnician   *string         `json:"lead_technician"`
	SalesPerson      *string         `json:"sales_person"`
	Priority         PriorityLevel   `json:"priority"`
	ItemCount        int             `json:"item_count"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type WorkOrderList struct {
	Items    []WorkOrder `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

type WorkOrderCreate struct {
	CityID           uuid.UUID       `json:"city_id"`
	AircraftID       uuid.UUID       `json:"aircraft_id"`
	WorkOrderType    WorkOrderType   `json:"work_order_type,omitempty"`
	Status           WorkOrderStatus `json:"status,omitempty"`
	StatusNotes      *string         `json:"status_notes,omitempty"`
	CustomerName     *string         `json:"customer_name,omitempty"`
	CustomerPONumber *string         `json:"customer_po_number,omitempty"`
	DueDate          *string         `json:"due_date,omitempty"`
	LeadTechnician   *string         `json:"lead_technician,omitempty"`
	SalesPerson      *string         `json:"sales_person,omitempty"`
	Priority         PriorityLevel   `json:"priority,omitempty"`
	CreatedBy        string          `json:"created_by"`
}

type WorkOrderUpdate struct {
	WorkOrderType    *WorkOrderType   `json:"work_order_type,omitempty"`
	Status           *WorkOrderStatus `json:"status,omitempty"`
	StatusNotes      *string          `json:"status_notes,omitempty"`
	AircraftID       *uuid.UUID       `json:"aircraft_id,omitempty"`
	CustomerName     *string          `json:"customer_name,omitempty"`
	CustomerPONumber *string          `json:"customer_po_number,omitempty"`
	DueDate          *string          `json:"due_date,omitempty"`
	LeadTechnician   *string          `json:"lead_technician,omitempty"`
	SalesPerson      *string          `json:"sales_person,omitempty"`
	Priority         *PriorityLevel   `json:"priority,omitempty"`
	UpdatedBy        *string          `json:"updated_by,omitempty"`
}
