// internal/store/catalog.go
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// Products returns a copy of the product collection, newest first
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]catalog.Product, len(s.products))
	for i, p := range s.products {
		products[i] = p.Clone()
	}
	return products
}

// ProductByID returns the product with the given ID
func (s *Store) ProductByID(id string) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i].Clone(), nil
		}
	}
	return catalog.Product{}, ErrNotFound
}

// AddProduct inserts a product at the front of the collection. ID
// uniqueness is the caller's responsibility; an empty ID gets generated.
func (s *Store) AddProduct(product catalog.Product) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	s.products = append([]catalog.Product{product}, s.products...)

	s.log.WithField("product_id", product.ID).Debug("Product added")

	if err := s.persist(snapshot.KeyProducts, s.products); err != nil {
		return catalog.Product{}, err
	}
	return product.Clone(), nil
}

// UpdateProduct replaces the product with the same ID
func (s *Store) UpdateProduct(product catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return s.persist(snapshot.KeyProducts, s.products)
		}
	}
	return ErrNotFound
}

// DeleteProduct removes the product with the given ID
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persist(snapshot.KeyProducts, s.products)
		}
	}
	return ErrNotFound
}

// Categories returns a copy of the category list
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// AddCategory appends a category if not already present. The match is a
// case-sensitive exact match; adding an existing category is a no-op.
func (s *Store) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c == name {
			return nil
		}
	}
	s.categories = append(s.categories, name)
	return s.persist(snapshot.KeyCategories, s.categories)
}

// AddReview prepends a review to the product's review list and recomputes
// the stored rating as the one-decimal mean of all ratings.
func (s *Store) AddReview(productID string, review catalog.Review) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}

		if review.ID == "" {
			review.ID = uuid.New().String()
		}
		if review.Date.IsZero() {
			review.Date = time.Now().UTC()
		}

		p := &s.products[i]
		p.Reviews = append([]catalog.Review{review}, p.Reviews...)
		p.RecomputeRating()

		if err := s.persist(snapshot.KeyProducts, s.products); err != nil {
			return catalog.Product{}, err
		}
		return p.Clone(), nil
	}
	return catalog.Product{}, ErrNotFound
}
