// internal/store/order.go
package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/rupedia-backend/internal/domain/cart"
	"github.com/your-org/rupedia-backend/internal/domain/order"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// PlaceOrderInput carries the caller-supplied part of a new order. The
// store fills in identity, timestamps, statuses and the timeline seed;
// caller values win on any field both sides could set.
type PlaceOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	City            string

	Items []cart.Line // optional; defaults to the current cart snapshot

	Subtotal    int64
	DeliveryFee int64
	Tax         int64
	Discount    int64
	TotalAmount int64

	PaymentMethod   string
	PaymentPlatform string
	TrxID           string

	ShippingAddress *order.Address // optional, defaults to the customer fields
	BillingAddress  *order.Address // optional, defaults to shipping
}

// Orders returns a copy of the orders collection, newest first
func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]order.Order, len(s.orders))
	for i, o := range s.orders {
		orders[i] = o.Clone()
	}
	return orders
}

// OrderByID returns the order with the given internal ID
func (s *Store) OrderByID(id string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i].Clone(), nil
		}
	}
	return order.Order{}, ErrNotFound
}

// OrderByNumber returns the order with the given customer-facing number.
// ID and number carry the same value today, but tracking lookups go
// through this accessor so the policy can change in one place.
func (s *Store) OrderByNumber(number string) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderNumber == number || s.orders[i].ID == number {
			return s.orders[i].Clone(), nil
		}
	}
	return order.Order{}, ErrNotFound
}

// PlaceOrder synthesizes a new order from the input and the current cart,
// prepends it to the orders collection, clears the cart, and returns the
// new order. When no explicit subtotal is supplied the total amount is
// used as-is; see DESIGN.md before "fixing" that.
func (s *Store) PlaceOrder(input PlaceOrderInput) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := input.Items
	if items == nil {
		items = make([]cart.Line, len(s.cart))
		for i, line := range s.cart {
			items[i] = line.Clone()
		}
	}
	if len(items) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	number := generateOrderNumber()
	now := time.Now().UTC()

	subtotal := input.Subtotal
	if subtotal == 0 {
		subtotal = input.TotalAmount
	}

	shipping := order.Address{
		Name:    input.CustomerName,
		Phone:   input.CustomerPhone,
		Address: input.CustomerAddress,
		City:    input.City,
	}
	if input.ShippingAddress != nil {
		shipping = *input.ShippingAddress
	}
	billing := shipping
	if input.BillingAddress != nil {
		billing = *input.BillingAddress
	}

	o := order.Order{
		ID:          number,
		OrderNumber: number,
		CreatedAt:   now,

		Items: items,

		Subtotal:    subtotal,
		DeliveryFee: input.DeliveryFee,
		Tax:         input.Tax,
		Discount:    input.Discount,
		TotalAmount: input.TotalAmount,

		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		City:            input.City,

		ShippingAddress: shipping,
		BillingAddress:  billing,

		PaymentMethod:   input.PaymentMethod,
		PaymentPlatform: input.PaymentPlatform,
		TrxID:           input.TrxID,

		Status:            order.StatusPending,
		PaymentStatus:     order.PaymentStatusPending,
		FulfillmentStatus: order.FulfillmentUnfulfilled,
	}
	o.AppendTimeline("Order Placed", "", SystemActor)

	s.orders = append([]order.Order{o}, s.orders...)

	if err := s.persist(snapshot.KeyOrders, s.orders); err != nil {
		return order.Order{}, err
	}
	if err := s.clearCartLocked(); err != nil {
		return order.Order{}, err
	}

	s.log.WithFields(map[string]interface{}{
		"order_number": o.OrderNumber,
		"total_amount": o.TotalAmount,
		"items":        len(o.Items),
	}).Info("Order placed")

	return o.Clone(), nil
}

// UpdateOrderStatus sets the legacy status and derives the fulfillment
// status through the fixed mapping; unmapped legacy values leave the
// fulfillment status at its previous value. Exactly one timeline entry
// records the transition and the acting user.
func (s *Store) UpdateOrderStatus(id string, status order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateOrderStatusLocked(id, status, s.actor())
}

func (s *Store) updateOrderStatusLocked(id string, status order.Status, by string) error {
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}

		o := &s.orders[i]
		o.Status = status
		if fulfillment, ok := order.FulfillmentFromStatus(status); ok {
			o.FulfillmentStatus = fulfillment
		}
		o.AppendTimeline(fmt.Sprintf("Status updated to %s", status), "", by)

		return s.persist(snapshot.KeyOrders, s.orders)
	}
	return ErrNotFound
}

// RecordPayment accumulates a manually-reported payment on the order and
// derives the payment status: paid once the total is covered, partial
// otherwise. A non-empty trxID replaces the stored transaction reference.
func (s *Store) RecordPayment(id string, amount int64, trxID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}

		o := &s.orders[i]
		o.AmountPaid += amount
		if trxID != "" {
			o.TrxID = trxID
		}
		if o.AmountPaid >= o.TotalAmount {
			o.PaymentStatus = order.PaymentStatusPaid
		} else {
			o.PaymentStatus = order.PaymentStatusPartial
		}

		note := fmt.Sprintf("%d %s received", amount, s.config.Store.Currency)
		if trxID != "" {
			note += ", trx " + trxID
		}
		o.AppendTimeline("Payment recorded", note, s.actor())

		return s.persist(snapshot.KeyOrders, s.orders)
	}
	return ErrNotFound
}

// generateOrderNumber returns a randomized order number, e.g. ORD-1A2B3C.
// The same value serves as the internal ID.
func generateOrderNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:6])
}
