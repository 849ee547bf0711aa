// internal/pkg/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/your-org/rupedia-backend/internal/domain/order"
)

// WriteOrdersCSV writes the orders as CSV, one row per order. Items are
// flattened into a single cell, e.g. "2x Ceramic Vase (Color: Blue)".
func WriteOrdersCSV(w io.Writer, orders []order.Order) error {
	cw := csv.NewWriter(w)

	header := []string{"Order ID", "Date", "Customer", "Phone", "Items", "Total", "Status"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, o := range orders {
		row := []string{
			o.OrderNumber,
			o.CreatedAt.Format("2006-01-02"),
			o.CustomerName,
			o.CustomerPhone,
			itemsSummary(o),
			fmt.Sprintf("%d", o.TotalAmount),
			string(o.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write order %s: %w", o.OrderNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func itemsSummary(o order.Order) string {
	parts := make([]string, 0, len(o.Items))
	for _, line := range o.Items {
		part := fmt.Sprintf("%dx %s", line.Quantity, line.Product.Name)
		if label := line.VariantLabel(); label != "" {
			part += " (" + label + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
