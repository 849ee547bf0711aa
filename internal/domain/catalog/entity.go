// internal/domain/catalog/entity.go
package catalog

import (
	"math"
	"time"
)

// VariantOption represents one configurable option on a product, e.g.
// {Name: "Color", Values: ["#E5E7EB", "#000000"]}. Order of options is
// the display order.
type VariantOption struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Review represents a customer review on a product
type Review struct {
	ID       string    `json:"id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Product represents a catalog entry
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           int64           `json:"price"` // BDT, whole taka
	OriginalPrice   int64           `json:"original_price,omitempty"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	IsFeatured      bool            `json:"is_featured"`
	IsPreOrder      bool            `json:"is_pre_order,omitempty"`
	PreOrderEndDate *time.Time      `json:"pre_order_end_date,omitempty"`
	IsCustomOrder   bool            `json:"is_custom_order,omitempty"`
	Stock           *int            `json:"stock,omitempty"` // nil = not tracked
	VariantOptions  []VariantOption `json:"variant_options,omitempty"`
	Reviews         []Review        `json:"reviews,omitempty"`
	Rating          float64         `json:"rating,omitempty"` // mean, one decimal
}

// HasVariantOptions reports whether the product requires a variant selection
func (p *Product) HasVariantOptions() bool {
	return len(p.VariantOptions) > 0
}

// IsInStock reports availability; products without stock tracking are always available
func (p *Product) IsInStock() bool {
	return p.Stock == nil || *p.Stock > 0
}

// DiscountPercentage returns the discount against the original price, 0 if none
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
	}
	return 0
}

// RecomputeRating recalculates the stored rating as the arithmetic mean of
// all review ratings, rounded to one decimal place. Zero when no reviews.
func (p *Product) RecomputeRating() {
	if len(p.Reviews) == 0 {
		p.Rating = 0
		return
	}
	var sum int
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(p.Reviews))
	p.Rating = math.Round(mean*10) / 10
}

// Clone returns a deep copy of the product
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Stock != nil {
		stock := *p.Stock
		out.Stock = &stock
	}
	if p.PreOrderEndDate != nil {
		end := *p.PreOrderEndDate
		out.PreOrderEndDate = &end
	}
	if p.VariantOptions != nil {
		out.VariantOptions = make([]VariantOption, len(p.VariantOptions))
		for i, opt := range p.VariantOptions {
			out.VariantOptions[i] = VariantOption{
				Name:   opt.Name,
				Values: append([]string(nil), opt.Values...),
			}
		}
	}
	if p.Reviews != nil {
		out.Reviews = append([]Review(nil), p.Reviews...)
	}
	return out
}
