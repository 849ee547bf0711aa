// internal/domain/catalog/entity_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{4}, 4.0},
		{"mean rounds to one decimal", []int{4, 5}, 4.5},
		{"repeating decimal rounds", []int{5, 4, 4}, 4.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{}
			for _, r := range tt.ratings {
				p.Reviews = append(p.Reviews, Review{Rating: r})
			}
			p.RecomputeRating()
			assert.Equal(t, tt.want, p.Rating)
		})
	}
}

func TestDiscountPercentage(t *testing.T) {
	discounted := Product{Price: 4500, OriginalPrice: 5500}
	assert.Equal(t, 18, discounted.DiscountPercentage())

	noOriginal := Product{Price: 4500}
	assert.Zero(t, noOriginal.DiscountPercentage())

	samePrice := Product{Price: 5500, OriginalPrice: 5500}
	assert.Zero(t, samePrice.DiscountPercentage())
}

func TestIsInStock(t *testing.T) {
	untracked := Product{}
	assert.True(t, untracked.IsInStock())

	zero, five := 0, 5
	soldOut := Product{Stock: &zero}
	assert.False(t, soldOut.IsInStock())
	available := Product{Stock: &five}
	assert.True(t, available.IsInStock())
}

func TestSeedMatchesDefaultCategories(t *testing.T) {
	categories := map[string]bool{}
	for _, c := range DefaultCategories() {
		categories[c] = true
	}

	for _, p := range Seed() {
		assert.Truef(t, categories[p.Category], "product %s has unknown category %s", p.ID, p.Category)
	}
}

func TestProductCloneIsDeep(t *testing.T) {
	stock := 3
	p := Product{
		ID:     "p1",
		Images: []string{"a.jpg"},
		Stock:  &stock,
		VariantOptions: []VariantOption{
			{Name: "Color", Values: []string{"Red"}},
		},
		Reviews: []Review{{ID: "r1", Rating: 5}},
	}

	clone := p.Clone()
	clone.Images[0] = "b.jpg"
	*clone.Stock = 9
	clone.VariantOptions[0].Values[0] = "Blue"

	assert.Equal(t, "a.jpg", p.Images[0])
	assert.Equal(t, 3, *p.Stock)
	assert.Equal(t, "Red", p.VariantOptions[0].Values[0])
}
