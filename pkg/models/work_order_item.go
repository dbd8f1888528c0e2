package models

import "github.com/google/uuid"

type WorkOrderItemStatus string

const (
	ItemStatusOpen            WorkOrderItemStatus = "open"
	ItemStatusWaitingForParts WorkOrderItemStatus = "waiting_for_parts"
	ItemStatusInProgress      WorkOrderItemStatus = "in_progress"
	ItemStatusTechReview      WorkOrderItemStatus = "tech_review"
	ItemStatusAdminReview     WorkOrderItemStatus = "admin_review"
	ItemStatusFinished        WorkOrderItemStatus = "finished"
)

type BillingMethod string

const (
	BillingHourly   BillingMethod = "hourly"
	BillingFlatRate BillingMethod = "flat_rate"
	BillingWarranty BillingMethod = "warranty"
)

// WorkOrderItem is one line item of a work order. Item numbers are a
// per-work-order sequence assigned upstream.
type WorkOrderItem struct {
	ID               uuid.UUID           `json:"id"`
	WorkOrderID      uuid.UUID           `json:"work_order_id"`
	ItemNumber       int                 `json:"item_number"`
	Status           WorkOrderItemStatus `json:"status"`
	Discrepancy      *string             `json:"discrepancy"`
	CorrectiveAction *string             `json:"corrective_action"`
	Notes            *string             `json:"notes"`
	Category         *string             `json:"category"`
	SubCategory      *string             `json:"sub_category"`
	ATACode          *string             `json:"ata_code"`
	HoursEstimate    *float64            `json:"hours_estimate"`
	BillingMethod    BillingMethod       `json:"billing_method"`
	FlatRate         *float64            `json:"flat_rate"`
	Department       *string             `json:"department"`
	DoNotBill        bool                `json:"do_not_bill"`
	EnableRII        bool                `json:"enable_rii"`

	CreatedBy string  `json:"created_by"`
	UpdatedBy *string `json:"updated_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type WorkOrderItemList struct {
	Items []WorkOrderItem `json:"items"`
	Total int             `json:"total"`
}

type WorkOrderItemCreate struct {
	Status           WorkOrderItemStatus `json:"status,omitempty"`
	Discrepancy      *string             `json:"discrepancy,omitempty"`
	CorrectiveAction *string             `json:"corrective_action,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
	Category         *string             `json:"category,omitempty"`
	SubCategory      *string             `json:"sub_category,omitempty"`
	ATACode          *string             `json:"ata_code,omitempty"`
	HoursEstimate    *float64            `json:"hours_estimate,omitempty"`
	BillingMethod    BillingMethod       `json:"billing_method,omitempty"`
	FlatRate         *float64            `json:"flat_rate,omitempty"`
	Department       *string             `json:"department,omitempty"`
	DoNotBill        bool                `json:"do_not_bill,omitempty"`
	EnableRII        bool                `json:"enable_rii,omitempty"`
	CreatedBy        string              `json:"created_by"`
}

type WorkOrderItemUpdate struct {
	Status           *WorkOrderItemStatus `json:"status,omitempty"`
	Discrepancy      *string              `json:"discrepancy,omitempty"`
	CorrectiveAction *string              `json:"corrective_action,omitempty"`
	Notes            *string              `json:"notes,omitempty"`
	Category         *string              `json:"category,omitempty"`
	SubCategory      *string              `json:"sub_category,omitempty"`
	ATACode          *string              `json:"ata_code,omitempty"`
	HoursEstimate    *float64             `json:"hours_estimate,omitempty"`
	BillingMethod    *BillingMethod       `json:"billing_method,omitempty"`
	FlatRate         *float64             `json:"flat_rate,omitempty"`
	Department       *string              `json:"department,omitempty"`
	DoNotBill        *bool                `json:"do_not_bill,omitempty"`
	EnableRII        *bool                `json:"enable_rii,omitempty"`
	UpdatedBy        *string              `json:"updated_by,omitempty"`
}
