// internal/infrastructure/snapshot/snapshot.go
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/rupedia-backend/internal/config"
)

// ErrNoSnapshot is returned by Get when the key has never been written.
// Callers treat it as "use the built-in default", never as a failure.
var ErrNoSnapshot = errors.New("snapshot: key not found")

// Collection keys. One key per collection; values are JSON documents.
// The names are kept from the original storefront so an exported snapshot
// stays recognizable.
const (
	KeyProducts      = "rupedia_products"
	KeyOrders        = "rupedia_orders"
	KeyCategories    = "rupedia_categories"
	KeyCart          = "rupedia_cart"
	KeyCancellations = "rupedia_cancellations"
	KeyUser          = "rupedia_user"
)

// Store is a durable key-value snapshot store. Writes are synchronous:
// when Set returns, the value is persisted.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the snapshot store selected by configuration
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Snapshot.Backend {
	case "bolt":
		return NewBoltStore(cfg.Snapshot.Path)
	case "redis":
		return NewRedisStore(cfg)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}
