// internal/domain/order/entity_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFulfillmentFromStatus(t *testing.T) {
	tests := []struct {
		status Status
		want   FulfillmentStatus
		mapped bool
	}{
		{StatusDelivered, FulfillmentDelivered, true},
		{StatusCancelled, FulfillmentCancelled, true},
		{StatusShipped, FulfillmentShipped, true},
		{StatusProcessing, FulfillmentProcessing, true},
		{StatusPending, "", false},
		{StatusRefundProcessing, "", false},
		{StatusRefunded, "", false},
		{StatusReturnProcessing, "", false},
		{StatusReturned, "", false},
		{StatusExchangeProcessing, "", false},
		{StatusExchanged, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, ok := FulfillmentFromStatus(tt.status)
			assert.Equal(t, tt.mapped, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanBeCancelled(t *testing.T) {
	tests := []struct {
		fulfillment FulfillmentStatus
		want        bool
	}{
		{FulfillmentUnfulfilled, true},
		{FulfillmentProcessing, true},
		{FulfillmentShipped, false},
		{FulfillmentDelivered, false},
		{FulfillmentReturned, false},
		{FulfillmentCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.fulfillment), func(t *testing.T) {
			o := Order{FulfillmentStatus: tt.fulfillment}
			assert.Equal(t, tt.want, o.CanBeCancelled())
		})
	}
}

func TestOutstanding(t *testing.T) {
	o := Order{TotalAmount: 580}
	assert.Equal(t, int64(580), o.Outstanding())

	o.AmountPaid = 300
	assert.Equal(t, int64(280), o.Outstanding())

	o.AmountPaid = 600
	assert.Equal(t, int64(0), o.Outstanding())
}

func TestAppendTimeline(t *testing.T) {
	var o Order
	o.AppendTimeline("Order Placed", "", "System")
	o.AppendTimeline("Status updated to Shipped", "courier booked", "mona")

	assert.Len(t, o.Timeline, 2)
	assert.Equal(t, "Order Placed", o.Timeline[0].Action)
	assert.Equal(t, "mona", o.Timeline[1].By)
	assert.Equal(t, "courier booked", o.Timeline[1].Note)
}
