// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/cancellation"
	"github.com/your-org/rupedia-backend/internal/domain/cart"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/domain/order"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// Sentinel errors returned by mutations. A mutation that targets a missing
// entity reports ErrNotFound instead of silently doing nothing, so callers
// can tell "nothing to do" from "this was a bug".
var (
	ErrNotFound  = errors.New("store: not found")
	ErrEmptyCart = errors.New("store: cart is empty")
)

// User is the mock-authenticated session user. There are no credentials;
// logging in just records a name.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SystemActor is the timeline actor label used when no user is logged in
const SystemActor = "System"

// Store is the single source of truth for the catalog, cart, orders,
// categories, cancellation requests and the session user. Every mutation
// is written to the snapshot store before it returns, and a mutex keeps
// mutations strictly sequential.
//
// Construct it with New and pass it by reference; there is no package-level
// instance.
type Store struct {
	mu     sync.Mutex
	config *config.Config
	snap   snapshot.Store
	log    *logrus.Logger

	products      []catalog.Product
	orders        []order.Order
	categories    []string
	cart          []cart.Line
	cancellations []cancellation.Request
	user          *User
}

// New creates a store and rehydrates every collection from the snapshot
// store. A collection without a snapshot falls back to its built-in
// default: the seed catalog, the starter category list, or empty.
func New(cfg *config.Config, snap snapshot.Store, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.New()
	}

	s := &Store{
		config: cfg,
		snap:   snap,
		log:    log,
	}

	if err := s.rehydrate(); err != nil {
		return nil, fmt.Errorf("failed to rehydrate store: %w", err)
	}

	log.WithFields(logrus.Fields{
		"products":      len(s.products),
		"orders":        len(s.orders),
		"cart_lines":    len(s.cart),
		"cancellations": len(s.cancellations),
	}).Info("Store rehydrated")

	return s, nil
}

func (s *Store) rehydrate() error {
	if err := s.loadCollection(snapshot.KeyProducts, &s.products); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.products = catalog.Seed()
	}

	if err := s.loadCollection(snapshot.KeyOrders, &s.orders); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.orders = []order.Order{}
	}

	if err := s.loadCollection(snapshot.KeyCategories, &s.categories); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.categories = catalog.DefaultCategories()
	}

	if err := s.loadCollection(snapshot.KeyCart, &s.cart); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.cart = []cart.Line{}
	}

	if err := s.loadCollection(snapshot.KeyCancellations, &s.cancellations); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.cancellations = []cancellation.Request{}
	}

	var u User
	if err := s.loadCollection(snapshot.KeyUser, &u); err != nil {
		if !errors.Is(err, snapshot.ErrNoSnapshot) {
			return err
		}
		s.user = nil
	} else {
		s.user = &u
	}

	return nil
}

func (s *Store) loadCollection(key string, dest interface{}) error {
	data, err := s.snap.Get(context.Background(), key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("corrupt snapshot for %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", key, err)
	}
	if err := s.snap.Set(context.Background(), key, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// actor returns the timeline label for the current session user
func (s *Store) actor() string {
	if s.user != nil && s.user.Username != "" {
		return s.user.Username
	}
	return SystemActor
}
