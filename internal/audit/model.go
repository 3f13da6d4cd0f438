package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
	StatusRejected  Status = "REJECTED"
)

// Submission records one attempt to push a weekly menu to the canteen API.
type Submission struct {
	ID        uuid.UUID       `json:"id"`
	CanteenID int             `json:"canteen_id"`
	MenuID    *int            `json:"menu_id,omitempty"`
	UserID    string          `json:"user_id"`
	UserEmail string          `json:"user_email"`
	MenuType  string          `json:"menu_type"`
	ItemCount int             `json:"item_count"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Status    Status          `json:"status"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
