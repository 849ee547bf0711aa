// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/rupedia-backend/internal/domain/catalog"
)

func TestLineID(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		selected  map[string]string
		want      string
	}{
		{
			name:      "no options",
			productID: "p1",
			selected:  nil,
			want:      "p1-default",
		},
		{
			name:      "empty options",
			productID: "p1",
			selected:  map[string]string{},
			want:      "p1-default",
		},
		{
			name:      "single option",
			productID: "p1",
			selected:  map[string]string{"Color": "Red"},
			want:      "p1-Color:Red",
		},
		{
			name:      "options sorted by name",
			productID: "p1",
			selected:  map[string]string{"Size": "Large", "Color": "Red"},
			want:      "p1-Color:Red-Size:Large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineID(tt.productID, tt.selected))
		})
	}
}

func TestNewLine(t *testing.T) {
	product := catalog.Product{ID: "p1", Name: "Shirt", Price: 500}

	line := NewLine(product, map[string]string{"Color": "Red"})

	assert.Equal(t, "p1-Color:Red", line.ID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Shirt", line.Product.Name)
	assert.False(t, line.AddedAt.IsZero())
}

func TestLineTotal(t *testing.T) {
	line := Line{Product: catalog.Product{Price: 500}, Quantity: 3}
	assert.Equal(t, int64(1500), line.LineTotal())
}

func TestVariantLabel(t *testing.T) {
	line := Line{SelectedOptions: map[string]string{"Size": "Large", "Color": "Red"}}
	assert.Equal(t, "Color: Red, Size: Large", line.VariantLabel())

	assert.Empty(t, Line{}.VariantLabel())
}

func TestCalculateTotals(t *testing.T) {
	lines := []Line{
		{Product: catalog.Product{Price: 500}, Quantity: 2},
		{Product: catalog.Product{Price: 1800}, Quantity: 1},
	}

	totals := CalculateTotals(lines)
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(2800), totals.Subtotal)
}

func TestCloneIsDeep(t *testing.T) {
	line := Line{
		ID:              "p1-Color:Red",
		Product:         catalog.Product{ID: "p1", Images: []string{"a.jpg"}},
		SelectedOptions: map[string]string{"Color": "Red"},
		Quantity:        1,
	}

	clone := line.Clone()
	clone.SelectedOptions["Color"] = "Blue"
	clone.Product.Images[0] = "b.jpg"

	assert.Equal(t, "Red", line.SelectedOptions["Color"])
	assert.Equal(t, "a.jpg", line.Product.Images[0])
}
