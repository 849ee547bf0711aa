// internal/store/cart.go
package store

import (
	"github.com/your-org/rupedia-backend/internal/domain/cart"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// Cart returns a copy of the current cart lines
func (s *Store) Cart() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]cart.Line, len(s.cart))
	for i, line := range s.cart {
		lines[i] = line.Clone()
	}
	return lines
}

// AddToCart adds one unit of the product with the given variant selection.
// If a line for the same (product, selection) pair already exists its
// quantity is incremented by 1; otherwise a new line with quantity 1 is
// appended. The resulting line is returned.
func (s *Store) AddToCart(product catalog.Product, selected map[string]string) (cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lineID := cart.LineID(product.ID, selected)
	for i := range s.cart {
		if s.cart[i].ID == lineID {
			s.cart[i].Quantity++
			if err := s.persist(snapshot.KeyCart, s.cart); err != nil {
				return cart.Line{}, err
			}
			return s.cart[i].Clone(), nil
		}
	}

	line := cart.NewLine(product, selected)
	s.cart = append(s.cart, line)

	s.log.WithField("line_id", line.ID).Debug("Cart line added")

	if err := s.persist(snapshot.KeyCart, s.cart); err != nil {
		return cart.Line{}, err
	}
	return line.Clone(), nil
}

// RemoveLine deletes the matching cart line. Removing a line that does not
// exist succeeds: the requested outcome already holds.
func (s *Store) RemoveLine(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == lineID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	return s.persist(snapshot.KeyCart, s.cart)
}

// UpdateQuantity adds delta (positive or negative) to the line's quantity,
// clamped to a minimum of 1. Returns ErrNotFound if no such line exists.
func (s *Store) UpdateQuantity(lineID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == lineID {
			quantity := s.cart[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			s.cart[i].Quantity = quantity
			return s.persist(snapshot.KeyCart, s.cart)
		}
	}
	return ErrNotFound
}

// ClearCart empties the cart
func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCartLocked()
}

func (s *Store) clearCartLocked() error {
	s.cart = []cart.Line{}
	return s.persist(snapshot.KeyCart, s.cart)
}
