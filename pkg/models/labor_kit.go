package models

import "github.com/google/uuid"

// LaborKit is a reusable template of work order line items. Applying a
// kit copies every kit item into a target work order.
type LaborKit struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	IsActive    bool      `json:"is_active"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type LaborKitList struct {
	Items []LaborKit `json:"items"`
	Total int        `json:"total"`
}

type LaborKitCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	CreatedBy   *string `json:"created_by,omitempty"`
}

type LaborKitUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	UpdatedBy   *string `json:"updated_by,omitempty"`
}

// LaborKitItem mirrors WorkOrderItem minus the work order linkage and
// per-work-order status.
type LaborKitItem struct {
	ID               uuid.UUID     `json:"id"`
	LaborKitID       uuid.UUID     `json:"labor_kit_id"`
	ItemNumber       int           `json:"item_number"`
	Discrepancy      *string       `json:"discrepancy"`
	CorrectiveAction *string       `json:"corrective_action"`
	Notes            *string       `json:"notes"`
	Category         *string       `json:"category"`
	SubCategory      *string       `json:"sub_category"`
	ATACode          *string       `json:"ata_code"`
	HoursEstimate    *float64      `json:"hours_estimate"`
	BillingMethod    BillingMethod `json:"billing_method"`
	FlatRate         *float64      `json:"flat_rate"`
	Department       *string       `json:"department"`
	DoNotBill        bool          `json:"do_not_bill"`
	EnableRII        bool          `json:"enable_rii"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type LaborKitItemList struct {
	Items []LaborKitItem `json:"items"`
	Total int            `json:"total"`
}

type LaborKitItemCreate struct {
	Discrepancy      *string       `json:"discrepancy,omitempty"`
	CorrectiveAction *string       `json:"corrective_action,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
	Category         *string       `json:"category,omitempty"`
	SubCategory      *string       `json:"sub_category,omitempty"`
	ATACode          *string       `json:"ata_code,omitempty"`
	HoursEstimate    *float64      `json:"hours_estimate,omitempty"`
	BillingMethod    BillingMethod `json:"billing_method,omitempty"`
	FlatRate         *float64      `json:"flat_rate,omitempty"`
	Department       *string       `json:"department,omitempty"`
	DoNotBill        bool          `json:"do_not_bill,omitempty"`
	EnableRII        bool          `json:"enable_rii,omitempty"`
	CreatedBy        string        `json:"created_by"`
}

type LaborKitItemUpdate struct {
	Discrepancy      *string        `json:"discrepancy,omitempty"`
	CorrectiveAction *string        `json:"corrective_action,omitempty"`
	Notes            *string        `json:"notes,omitempty"`
	Category         *string        `json:"category,omitempty"`
	SubCategory      *string        `json:"sub_category,omitempty"`
	ATACode          *string        `json:"ata_code,omitempty"`
	HoursEstimate    *float64       `json:"hours_estimate,omitempty"`
	BillingMethod    *BillingMethod `json:"billing_method,omitempty"`
	FlatRate         *float64       `json:"flat_rate,omitempty"`
	Department       *string        `json:"department,omitempty"`
	DoNotBill        *bool          `json:"do_not_bill,omitempty"`
	EnableRII        *bool          `json:"enable_rii,omitempty"`
	UpdatedBy        *string        `json:"updated_by,omitempty"`
}

// ApplyLaborKitResult reports how many items the upstream materialized
// into the target work order.
type ApplyLaborKitResult struct {
	ItemsCreated int       `json:"items_created"`
	WorkOrderID  uuid.UUID `json:"work_order_id"`
	LaborKitID   uuid.UUID `json:"labor_kit_id"`
}
