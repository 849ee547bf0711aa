// internal/store/store_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/rupedia-backend/internal/config"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// memorySnapshot is an in-memory snapshot.Store for tests
type memorySnapshot struct {
	data map[string][]byte
}

func newMemorySnapshot() *memorySnapshot {
	return &memorySnapshot{data: map[string][]byte{}}
}

func (m *memorySnapshot) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, snapshot.ErrNoSnapshot
	}
	return value, nil
}

func (m *memorySnapshot) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memorySnapshot) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memorySnapshot) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "Rupedia Storefront",
			Environment: "development",
		},
		Store: config.StoreConfig{
			Currency:               "BDT",
			DeliveryFeeInsideDhaka: 80,
			DeliveryFeeOutside:     130,
		},
		JWT: config.JWTConfig{
			Secret: "test-secret-key-that-is-long-enough-123",
		},
	}
}

func newTestStore(t *testing.T) (*Store, *memorySnapshot) {
	t.Helper()
	snap := newMemorySnapshot()
	st, err := New(testConfig(), snap, nil)
	require.NoError(t, err)
	return st, snap
}

func testProduct(id, name string, price int64, options ...catalog.VariantOption) catalog.Product {
	return catalog.Product{
		ID:             id,
		Name:           name,
		Category:       "Home Decor",
		Price:          price,
		VariantOptions: options,
	}
}

func TestNewSeedsDefaults(t *testing.T) {
	st, _ := newTestStore(t)

	assert.Equal(t, catalog.Seed(), st.Products())
	assert.Equal(t, catalog.DefaultCategories(), st.Categories())
	assert.Empty(t, st.Orders())
	assert.Empty(t, st.Cart())
	assert.Empty(t, st.CancellationRequests())
	assert.Nil(t, st.CurrentUser())
}

func TestNewRehydratesFromSnapshot(t *testing.T) {
	snap := newMemorySnapshot()

	first, err := New(testConfig(), snap, nil)
	require.NoError(t, err)

	_, err = first.AddToCart(testProduct("p1", "Ceramic Vase", 500), nil)
	require.NoError(t, err)
	require.NoError(t, first.AddCategory("Gifts"))
	_, err = first.Login("mona")
	require.NoError(t, err)

	// A fresh store over the same snapshot sees the persisted state
	second, err := New(testConfig(), snap, nil)
	require.NoError(t, err)

	require.Len(t, second.Cart(), 1)
	assert.Equal(t, "p1-default", second.Cart()[0].ID)
	assert.Contains(t, second.Categories(), "Gifts")
	require.NotNil(t, second.CurrentUser())
	assert.Equal(t, "mona", second.CurrentUser().Username)
}

func TestNewRejectsCorruptSnapshot(t *testing.T) {
	snap := newMemorySnapshot()
	snap.data[snapshot.KeyProducts] = []byte("{not json")

	_, err := New(testConfig(), snap, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), snapshot.KeyProducts)
}

func TestLoginLogout(t *testing.T) {
	st, snap := newTestStore(t)

	user, err := st.Login("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)
	assert.Contains(t, snap.data, snapshot.KeyUser)

	require.NoError(t, st.Logout())
	assert.Nil(t, st.CurrentUser())
	assert.NotContains(t, snap.data, snapshot.KeyUser)
}
