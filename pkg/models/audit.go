package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditInsert AuditAction = "INSERT"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
)

// AuditRecord is append-only history produced upstream; this side only
// reads paginated slices of it.
type AuditRecord struct {
	ID            int             `json:"id"`
	EntityType    string          `json:"entity_type"`
	EntityID      uuid.UUID       `json:"entity_id"`
	Action        AuditAction     `json:"action"`
	OldValues     json.RawMessage `json:"old_values"`
	NewValues     json.RawMessage `json:"new_values"`
	ChangedFields []string        `json:"changed_fields"`
	UserID        *string         `json:"user_id"`
	SessionID     *string         `json:"session_id"`
	IPAddress     *string         `json:"ip_address"`
	CreatedAt     string          `json:"created_at"`

	// Only set for work order item records in the combined view.
	ItemNumber *int `json:"item_number,omitempty"`
}

type AuditRecordList struct {
	Items    []AuditRecord `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	HasNext  bool          `json:"has_next"`
}
