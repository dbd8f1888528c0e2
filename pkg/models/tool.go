package models

import "github.com/google/uuid"

type ToolType string

const (
	ToolTypeCertified  ToolType = "certified"
	ToolTypeReference  ToolType = "reference"
	ToolTypeConsumable ToolType = "consumable"
	ToolTypeKit        ToolType = "kit"
)

type ToolGroup string

const (
	ToolGroupInService    ToolGroup = "in_service"
	ToolGroupOutOfService ToolGroup = "out_of_service"
	ToolGroupLost         ToolGroup = "lost"
	ToolGroupRetired      ToolGroup = "retired"
)

type ToolRoomBrief struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

type ToolRoom struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	City     CityBrief `json:"city"`
	IsActive bool      `json:"is_active"`
}

type ToolRoomList struct {
	Items []ToolRoom `json:"items"`
	Total int        `json:"total"`
}

// Tool is the list-row shape; ToolDetail carries the full record.
type Tool struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	ToolType           ToolType      `json:"tool_type"`
	ToolTypeCode       string        `json:"tool_type_code"`
	Description        *string       `json:"description"`
	ToolRoom           ToolRoomBrief `json:"tool_room"`
	City               CityBrief     `json:"city"`
	Make               *string       `json:"make"`
	Model              *string       `json:"model"`
	SerialNumber       *string       `json:"serial_number"`
	CalibrationDueDays *int          `json:"calibration_due_days"`
	NextCalibrationDue *string       `json:"next_calibration_due"`
	MediaCount         int           `json:"media_count"`
	IsInKit            bool          `json:"is_in_kit"`
	CreatedAt          string        `json:"created_at"`
	UpdatedAt          string        `json:"updated_at"`
}

type ToolBrief struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ToolType     ToolType  `json:"tool_type"`
	ToolTypeCode string    `json:"tool_type_code"`
}

// ToolDetail adds location, purchase, and calibration fields. Kit-type
// tools aggregate child tools; child tools reference their parent kit.
type ToolDetail struct {
	ID                  uuid.UUID     `json:"id"`
	Name                string        `json:"name"`
	ToolType            ToolType      `json:"tool_type"`
	ToolTypeCode        string        `json:"tool_type_code"`
	Description         *string       `json:"description"`
	Details             *string       `json:"details"`
	ToolGroup           ToolGroup     `json:"tool_group"`
	ToolRoom            ToolRoomBrief `json:"tool_room"`
	City                CityBrief     `json:"city"`
	Make                *string       `json:"make"`
	Model               *string       `json:"model"`
	SerialNumber        *string       `json:"serial_number"`
	Location            *string       `json:"location"`
	LocationNotes       *string       `json:"location_notes"`
	ToolCost            *float64      `json:"tool_cost"`
	PurchaseDate        *string       `json:"purchase_date"`
	DateLabeled         *string       `json:"date_labeled"`
	VendorName          *string       `json:"vendor_name"`
	CalibrationDays     *int          `json:"calibration_days"`
	CalibrationNotes    *string       `json:"calibration_notes"`
	CalibrationCost     *float64      `json:"calibration_cost"`
	LastCalibrationDate *string       `json:"last_calibration_date"`
	CalibrationDueDays  *int          `json:"calibration_due_days"`
	NextCalibrationDue  *string       `json:"next_calibration_due"`
	MediaCount          int           `json:"media_count"`
	IsInKit             bool          `json:"is_in_kit"`
	ParentKit           *ToolBrief    `json:"parent_kit"`
	KitTools            []ToolBrief   `json:"kit_tools"`
	CreatedBy           *string       `json:"created_by"`
	UpdatedBy           *string       `json:"updated_by"`
	CreatedAt           string        `json:"created_at"`
	UpdatedAt           string        `json:"updated_at"`
}

type ToolList struct {
	Items    []Tool `json:"items"`
	Total    int    `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
