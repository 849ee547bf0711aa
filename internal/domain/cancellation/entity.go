// internal/domain/cancellation/entity.go
package cancellation

import "time"

// Status represents the adjudication state of a cancellation request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Request represents a customer-submitted, admin-adjudicated request to
// cancel an order. At most one request exists per order; the boundary
// submitting the request enforces that.
type Request struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	TrxID        string    `json:"trx_id,omitempty"`
	Reason       string    `json:"reason"`
	Status       Status    `json:"status"`
	AdminNote    string    `json:"admin_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
