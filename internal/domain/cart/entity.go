// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/your-org/rupedia-backend/internal/domain/catalog"
)

// Line represents one product-plus-selected-variant entry in the cart.
// The line ID is derived from the product and the canonicalized option
// selection, so the same (product, selection) pair always maps to the
// same line no matter in which order the options were supplied.
type Line struct {
	ID              string            `json:"id"`
	Product         catalog.Product   `json:"product"`
	SelectedOptions map[string]string `json:"selected_options,omitempty"`
	Quantity        int               `json:"quantity"`
	AddedAt         time.Time         `json:"added_at"`
}

// LineID computes the composite cart-line identifier: the product ID
// followed by the selected option pairs sorted lexicographically by
// option name. An empty selection yields the "default" variant line.
func LineID(productID string, selected map[string]string) string {
	if len(selected) == 0 {
		return productID + "-default"
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(productID)
	for _, name := range names {
		fmt.Fprintf(&sb, "-%s:%s", name, selected[name])
	}
	return sb.String()
}

// NewLine creates a cart line with quantity 1 for the given selection
func NewLine(product catalog.Product, selected map[string]string) Line {
	var opts map[string]string
	if len(selected) > 0 {
		opts = make(map[string]string, len(selected))
		for k, v := range selected {
			opts[k] = v
		}
	}
	return Line{
		ID:              LineID(product.ID, selected),
		Product:         product.Clone(),
		SelectedOptions: opts,
		Quantity:        1,
		AddedAt:         time.Now().UTC(),
	}
}

// LineTotal returns price times quantity for the line
func (l Line) LineTotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// VariantLabel renders the selection for display, e.g. "Color: Red, Size: Large"
func (l Line) VariantLabel() string {
	if len(l.SelectedOptions) == 0 {
		return ""
	}
	names := make([]string, 0, len(l.SelectedOptions))
	for name := range l.SelectedOptions {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, l.SelectedOptions[name]))
	}
	return strings.Join(parts, ", ")
}

// Clone returns a deep copy of the line
func (l Line) Clone() Line {
	out := l
	out.Product = l.Product.Clone()
	if l.SelectedOptions != nil {
		out.SelectedOptions = make(map[string]string, len(l.SelectedOptions))
		for k, v := range l.SelectedOptions {
			out.SelectedOptions[k] = v
		}
	}
	return out
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Subtotal      int64 `json:"subtotal"`
}

// CalculateTotals sums up the given lines
func CalculateTotals(lines []Line) Totals {
	var totals Totals
	totals.ItemCount = len(lines)
	for _, line := range lines {
		totals.TotalQuantity += line.Quantity
		totals.Subtotal += line.LineTotal()
	}
	return totals
}
