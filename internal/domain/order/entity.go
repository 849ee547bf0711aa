// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/rupedia-backend/internal/domain/cart"
)

// Status is the legacy coarse-grained order status, retained for display
// and backward compatibility alongside the two-axis model below.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusProcessing         Status = "Processing"
	StatusShipped            Status = "Shipped"
	StatusDelivered          Status = "Delivered"
	StatusCancelled          Status = "Cancelled"
	StatusRefundProcessing   Status = "Refund Processing"
	StatusRefunded           Status = "Refunded"
	StatusReturnProcessing   Status = "Return Processing"
	StatusReturned           Status = "Returned"
	StatusExchangeProcessing Status = "Exchange Processing"
	StatusExchanged          Status = "Exchanged"
)

// PaymentStatus represents the financial settlement state of an order,
// independent of fulfillment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// FulfillmentStatus represents the operational delivery-pipeline state
type FulfillmentStatus string

const (
	FulfillmentUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentProcessing  FulfillmentStatus = "processing"
	FulfillmentShipped     FulfillmentStatus = "shipped"
	FulfillmentDelivered   FulfillmentStatus = "delivered"
	FulfillmentReturned    FulfillmentStatus = "returned"
	FulfillmentCancelled   FulfillmentStatus = "cancelled"
)

// FulfillmentFromStatus maps a legacy status to its fulfillment counterpart.
// Legacy values outside the mapping (refund/return/exchange flows) have no
// fulfillment image; the second return value is false and the caller keeps
// the previous fulfillment status.
func FulfillmentFromStatus(s Status) (FulfillmentStatus, bool) {
	switch s {
	case StatusDelivered:
		return FulfillmentDelivered, true
	case StatusCancelled:
		return FulfillmentCancelled, true
	case StatusShipped:
		return FulfillmentShipped, true
	case StatusProcessing:
		return FulfillmentProcessing, true
	default:
		return "", false
	}
}

// Address represents shipping/billing details (duplicated onto the order
// at creation so the two can diverge later without a schema change)
type Address struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// TimelineEntry is one entry of the append-only order audit log
type TimelineEntry struct {
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	Note   string    `json:"note,omitempty"`
	By     string    `json:"by,omitempty"`
}

// Order represents a completed checkout. Created atomically when the order
// is placed; afterwards only the status fields, the paid amount and the
// timeline change, and the timeline only grows.
type Order struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"` // same value as ID, see DESIGN.md
	CreatedAt   time.Time `json:"created_at"`

	Items []cart.Line `json:"items"` // snapshot of the cart at checkout

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	TotalAmount int64 `json:"total_amount"`
	AmountPaid  int64 `json:"amount_paid"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	City            string `json:"city"` // destination city, drives the delivery fee

	ShippingAddress Address `json:"shipping_address"`
	BillingAddress  Address `json:"billing_address"`

	PaymentMethod   string `json:"payment_method"` // "COD" or "Online Payment"
	PaymentPlatform string `json:"payment_platform,omitempty"`
	TrxID           string `json:"trx_id,omitempty"`

	Status            Status            `json:"status"`
	PaymentStatus     PaymentStatus     `json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`

	Timeline []TimelineEntry `json:"timeline"`
}

// AppendTimeline adds a new entry to the order's audit log
func (o *Order) AppendTimeline(action, note, by string) {
	o.Timeline = append(o.Timeline, TimelineEntry{
		At:     time.Now().UTC(),
		Action: action,
		Note:   note,
		By:     by,
	})
}

// CanBeCancelled reports whether a cancellation request is still possible
func (o *Order) CanBeCancelled() bool {
	switch o.FulfillmentStatus {
	case FulfillmentShipped, FulfillmentDelivered, FulfillmentReturned, FulfillmentCancelled:
		return false
	default:
		return true
	}
}

// Outstanding returns the amount still owed on the order
func (o *Order) Outstanding() int64 {
	if o.AmountPaid >= o.TotalAmount {
		return 0
	}
	return o.TotalAmount - o.AmountPaid
}

// Clone returns a deep copy of the order
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]cart.Line, len(o.Items))
		for i, line := range o.Items {
			out.Items[i] = line.Clone()
		}
	}
	if o.Timeline != nil {
		out.Timeline = append([]TimelineEntry(nil), o.Timeline...)
	}
	return out
}
