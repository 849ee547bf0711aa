// internal/store/order_test.go
package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/rupedia-backend/internal/domain/order"
)

func placeTestOrder(t *testing.T, st *Store) order.Order {
	t.Helper()

	_, err := st.AddToCart(testProduct("p1", "Ceramic Vase", 500), nil)
	require.NoError(t, err)

	placed, err := st.PlaceOrder(PlaceOrderInput{
		CustomerName:    "Rahim",
		CustomerPhone:   "01700000000",
		CustomerAddress: "House 1, Road 2",
		City:            "Dhaka",
		Subtotal:        500,
		DeliveryFee:     80,
		TotalAmount:     580,
		PaymentMethod:   "COD",
	})
	require.NoError(t, err)
	return placed
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	assert.True(t, strings.HasPrefix(placed.ID, "ORD-"))
	assert.Equal(t, placed.ID, placed.OrderNumber)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, "Ceramic Vase", placed.Items[0].Product.Name)

	assert.Empty(t, st.Cart())

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)
}

func TestPlaceOrderPrependsNewest(t *testing.T) {
	st, _ := newTestStore(t)
	placeTestOrder(t, st)
	second := placeTestOrder(t, st)

	orders := st.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
}

func TestPlaceOrderDefaults(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	assert.Equal(t, order.StatusPending, placed.Status)
	assert.Equal(t, order.PaymentStatusPending, placed.PaymentStatus)
	assert.Equal(t, order.FulfillmentUnfulfilled, placed.FulfillmentStatus)

	require.Len(t, placed.Timeline, 1)
	assert.Equal(t, "Order Placed", placed.Timeline[0].Action)
	assert.Equal(t, SystemActor, placed.Timeline[0].By)

	assert.Equal(t, "Rahim", placed.ShippingAddress.Name)
	assert.Equal(t, placed.ShippingAddress, placed.BillingAddress)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.PlaceOrder(PlaceOrderInput{CustomerName: "Rahim", TotalAmount: 580})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderSubtotalFallsBackToTotal(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddToCart(testProduct("p1", "Vase", 500), nil)
	require.NoError(t, err)

	placed, err := st.PlaceOrder(PlaceOrderInput{
		CustomerName: "Rahim",
		TotalAmount:  580,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(580), placed.Subtotal)
}

func TestUpdateOrderStatusMapsFulfillment(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	require.NoError(t, st.UpdateOrderStatus(placed.ID, order.StatusDelivered))

	got, err := st.OrderByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, got.Status)
	assert.Equal(t, order.FulfillmentDelivered, got.FulfillmentStatus)

	require.Len(t, got.Timeline, 2)
	assert.Equal(t, "Status updated to Delivered", got.Timeline[1].Action)
	assert.Equal(t, SystemActor, got.Timeline[1].By)
}

func TestUpdateOrderStatusUnmappedKeepsFulfillment(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	require.NoError(t, st.UpdateOrderStatus(placed.ID, order.StatusShipped))
	require.NoError(t, st.UpdateOrderStatus(placed.ID, order.StatusRefundProcessing))

	got, err := st.OrderByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusRefundProcessing, got.Status)
	assert.Equal(t, order.FulfillmentShipped, got.FulfillmentStatus)
}

func TestUpdateOrderStatusAttributedToSessionUser(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	_, err := st.Login("mona")
	require.NoError(t, err)
	require.NoError(t, st.UpdateOrderStatus(placed.ID, order.StatusProcessing))

	got, err := st.OrderByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "mona", got.Timeline[1].By)
}

func TestUpdateOrderStatusMissingOrder(t *testing.T) {
	st, _ := newTestStore(t)

	err := st.UpdateOrderStatus("ORD-MISSING", order.StatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPaymentDerivesStatus(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	require.NoError(t, st.RecordPayment(placed.ID, 300, "TRX123"))
	got, err := st.OrderByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPartial, got.PaymentStatus)
	assert.Equal(t, int64(300), got.AmountPaid)
	assert.Equal(t, "TRX123", got.TrxID)
	assert.Equal(t, int64(280), got.Outstanding())

	require.NoError(t, st.RecordPayment(placed.ID, 280, ""))
	got, err = st.OrderByID(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, int64(0), got.Outstanding())
}

func TestOrderByNumber(t *testing.T) {
	st, _ := newTestStore(t)
	placed := placeTestOrder(t, st)

	got, err := st.OrderByNumber(placed.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, got.ID)

	_, err = st.OrderByNumber("ORD-MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}
