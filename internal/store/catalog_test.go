// internal/store/catalog_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
)

func TestAddProductPrependsAndGeneratesID(t *testing.T) {
	st, _ := newTestStore(t)
	before := len(st.Products())

	added, err := st.AddProduct(testProduct("", "Brass Candle Holder", 2200))
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	products := st.Products()
	require.Len(t, products, before+1)
	assert.Equal(t, added.ID, products[0].ID)
}

func TestUpdateProduct(t *testing.T) {
	st, _ := newTestStore(t)

	added, err := st.AddProduct(testProduct("np-1", "Vase", 4500))
	require.NoError(t, err)

	added.Price = 4000
	require.NoError(t, st.UpdateProduct(added))

	got, err := st.ProductByID("np-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4000), got.Price)

	err = st.UpdateProduct(testProduct("missing", "Ghost", 1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddProduct(testProduct("np-1", "Vase", 4500))
	require.NoError(t, err)

	require.NoError(t, st.DeleteProduct("np-1"))
	_, err = st.ProductByID("np-1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.DeleteProduct("np-1"), ErrNotFound)
}

func TestAddCategoryDeduplicates(t *testing.T) {
	st, _ := newTestStore(t)
	before := len(st.Categories())

	require.NoError(t, st.AddCategory("Gifts"))
	require.NoError(t, st.AddCategory("Gifts"))

	assert.Len(t, st.Categories(), before+1)
}

func TestAddReviewRecomputesRating(t *testing.T) {
	st, _ := newTestStore(t)

	product := testProduct("np-1", "Vase", 4500)
	product.Reviews = []catalog.Review{
		{ID: "r1", UserName: "Sarah", Rating: 4, Comment: "Nice"},
	}
	product.Rating = 4.0
	_, err := st.AddProduct(product)
	require.NoError(t, err)

	updated, err := st.AddReview("np-1", catalog.Review{
		UserName: "Mike",
		Rating:   5,
		Comment:  "Excellent",
	})
	require.NoError(t, err)

	require.Len(t, updated.Reviews, 2)
	assert.Equal(t, "Mike", updated.Reviews[0].UserName)
	assert.NotEmpty(t, updated.Reviews[0].ID)
	assert.False(t, updated.Reviews[0].Date.IsZero())
	assert.Equal(t, 4.5, updated.Rating)
}

func TestAddReviewMissingProduct(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.AddReview("missing", catalog.Review{UserName: "Mike", Rating: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}
