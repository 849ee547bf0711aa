// internal/store/cancellation.go
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/your-org/rupedia-backend/internal/domain/cancellation"
	"github.com/your-org/rupedia-backend/internal/domain/order"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// CancellationRequests returns a copy of the cancellation request
// collection, newest first
func (s *Store) CancellationRequests() []cancellation.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]cancellation.Request(nil), s.cancellations...)
}

// CancellationRequestForOrder returns the request filed against the given
// order, or ErrNotFound when the order has none.
func (s *Store) CancellationRequestForOrder(orderID string) (cancellation.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.cancellations {
		if r.OrderID == orderID {
			return r, nil
		}
	}
	return cancellation.Request{}, ErrNotFound
}

// AddCancellationRequest files a new pending request and prepends it to
// the collection. Identity, status and timestamp are assigned here;
// one-request-per-order is enforced at the boundary, not in the store.
func (s *Store) AddCancellationRequest(req cancellation.Request) (cancellation.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = uuid.New().String()
	req.Status = cancellation.StatusPending
	req.CreatedAt = time.Now().UTC()

	s.cancellations = append([]cancellation.Request{req}, s.cancellations...)

	s.log.WithFields(map[string]interface{}{
		"request_id": req.ID,
		"order_id":   req.OrderID,
	}).Info("Cancellation request filed")

	if err := s.persist(snapshot.KeyCancellations, s.cancellations); err != nil {
		return cancellation.Request{}, err
	}
	return req, nil
}

// UpdateCancellationStatus moves a request to approved or rejected and
// stores the admin's note. Approval cascades: the order named by the
// request is moved to Cancelled in the same mutation, with its own
// timeline entry.
func (s *Store) UpdateCancellationStatus(id string, status cancellation.Status, adminNote string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cancellations {
		if s.cancellations[i].ID != id {
			continue
		}

		req := &s.cancellations[i]
		req.Status = status
		req.AdminNote = adminNote

		if err := s.persist(snapshot.KeyCancellations, s.cancellations); err != nil {
			return err
		}

		if status == cancellation.StatusApproved {
			if err := s.updateOrderStatusLocked(req.OrderID, order.StatusCancelled, s.actor()); err != nil {
				return err
			}
		}
		return nil
	}
	return ErrNotFound
}
