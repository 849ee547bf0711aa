// internal/domain/catalog/seed.go
package catalog

import "time"

// DefaultCategories is the starter category list used when no snapshot exists
func DefaultCategories() []string {
	return []string{"Home Decor", "Stationery", "Ornaments", "Makeup"}
}

// Seed returns the bundled starter catalog used when no snapshot exists
func Seed() []Product {
	return []Product{
		{
			ID:            "hd-1",
			Name:          "Minimalist Ceramic Vase",
			Description:   "Hand-crafted ceramic vase with a matte finish. Perfect for dried flowers.",
			Price:         4500,
			OriginalPrice: 5500,
			Category:      "Home Decor",
			Images:        []string{"https://picsum.photos/400/500?random=1"},
			IsFeatured:    true,
			VariantOptions: []VariantOption{
				{Name: "Color", Values: []string{"#E5E7EB", "#000000", "#D1D5DB"}},
			},
			Reviews: []Review{
				{ID: "r1", UserName: "Sarah K.", Rating: 5, Comment: "Absolutely beautiful vase! Fits perfectly with my minimal decor.", Date: seedDate(2024, time.March, 15)},
				{ID: "r2", UserName: "Mike R.", Rating: 4, Comment: "Great quality, but slightly smaller than expected.", Date: seedDate(2024, time.March, 10)},
			},
			Rating: 4.5,
		},
		{
			ID:          "hd-2",
			Name:        "Boho Macrame Wall Hanging",
			Description: "Intricate cotton macrame piece to add texture to your living space.",
			Price:       3250,
			Category:    "Home Decor",
			Images:      []string{"https://picsum.photos/400/500?random=2"},
			Rating:      4.8,
		},
		{
			ID:          "hd-3",
			Name:        "Scented Soy Candle - Lavender",
			Description: "Eco-friendly soy wax candle with a calming lavender scent.",
			Price:       1800,
			Category:    "Home Decor",
			Images:      []string{"https://picsum.photos/400/500?random=3"},
			IsFeatured:  true,
			VariantOptions: []VariantOption{
				{Name: "Size", Values: []string{"Small (4oz)", "Large (8oz)"}},
			},
			Rating: 5.0,
		},
		{
			ID:            "hd-4",
			Name:          "Velvet Throw Pillow",
			Description:   "Luxuriously soft velvet pillow cover in dusty rose.",
			Price:         2400,
			OriginalPrice: 3000,
			Category:      "Home Decor",
			Images:        []string{"https://picsum.photos/400/500?random=4"},
			VariantOptions: []VariantOption{
				{Name: "Color", Values: []string{"#FECDD3", "#1F2937", "#D1FAE5"}},
			},
			Rating: 4.2,
		},
		{
			ID:          "st-1",
			Name:        "Marble Hardcover Journal",
			Description: "Premium 120gsm paper journal with a gold-foiled marble cover.",
			Price:       2200,
			Category:    "Stationery",
			Images:      []string{"https://picsum.photos/400/500?random=5"},
			Rating:      4.7,
		},
		{
			ID:          "st-2",
			Name:        "Pastel Gel Pen Set",
			Description: "Set of 6 smooth-writing gel pens in aesthetic pastel shades.",
			Price:       1200,
			Category:    "Stationery",
			Images:      []string{"https://picsum.photos/400/500?random=6"},
			IsFeatured:  true,
			VariantOptions: []VariantOption{
				{Name: "Color", Values: []string{"#F9A8D4", "#93C5FD", "#C4B5FD"}},
			},
			Rating: 4.6,
		},
		{
			ID:          "st-3",
			Name:        "Weekly Desk Planner",
			Description: "Undated weekly planner pad to keep your tasks organized.",
			Price:       1500,
			Category:    "Stationery",
			Images:      []string{"https://picsum.photos/400/500?random=7"},
			Rating:      4.3,
		},
		{
			ID:            "or-1",
			Name:          "Gold Plated Layered Necklace",
			Description:   "Delicate double-layered necklace with a celestial pendant.",
			Price:         3800,
			OriginalPrice: 5000,
			Category:      "Ornaments",
			Images:        []string{"https://picsum.photos/400/500?random=8"},
			IsFeatured:    true,
			Reviews: []Review{
				{ID: "r3", UserName: "Emily T.", Rating: 5, Comment: "Stunning piece! I wear it every day.", Date: seedDate(2024, time.February, 28)},
			},
			Rating: 4.9,
		},
		{
			ID:          "or-2",
			Name:        "Pearl Drop Earrings",
			Description: "Classic freshwater pearl earrings with sterling silver hooks.",
			Price:       2800,
			Category:    "Ornaments",
			Images:      []string{"https://picsum.photos/400/500?random=9"},
			Rating:      4.8,
		},
		{
			ID:          "or-3",
			Name:        "Rose Quartz Bracelet",
			Description: "Beaded bracelet made with genuine rose quartz stones.",
			Price:       2000,
			Category:    "Ornaments",
			Images:      []string{"https://picsum.photos/400/500?random=10"},
			Rating:      4.5,
		},
		{
			ID:          "mk-1",
			Name:        "Matte Liquid Lipstick",
			Description: "Long-lasting matte lipstick in a deep berry shade.",
			Price:       1600,
			Category:    "Makeup",
			Images:      []string{"https://picsum.photos/400/500?random=11"},
			VariantOptions: []VariantOption{
				{Name: "Color", Values: []string{"#9F1239", "#BE123C", "#E11D48"}},
			},
			Rating: 4.4,
		},
		{
			ID:            "mk-2",
			Name:          "Highlighter Palette",
			Description:   "Triple-shade palette for a radiant, natural glow.",
			Price:         3400,
			OriginalPrice: 4200,
			Category:      "Makeup",
			Images:        []string{"https://picsum.photos/400/500?random=12"},
			IsFeatured:    true,
			Rating:        4.8,
		},
		{
			ID:          "mk-3",
			Name:        "Vegan Makeup Brush Set",
			Description: "7-piece professional brush set with bamboo handles.",
			Price:       4200,
			Category:    "Makeup",
			Images:      []string{"https://picsum.photos/400/500?random=13"},
			Rating:      4.9,
		},
		{
			ID:          "po-1",
			Name:        "Exclusive Pre-order: Artisan Lamp",
			Description: "Handcrafted artisan lamp, available for pre-order only.",
			Price:       6500,
			Category:    "Home Decor",
			Images:      []string{"https://picsum.photos/400/500?random=14"},
			IsFeatured:  true,
			IsPreOrder:  true,
			Rating:      5.0,
		},
		{
			ID:          "po-2",
			Name:        "Limited Edition Notebook Set",
			Description: "A set of 5 premium leather-bound notebooks. Pre-order exclusive.",
			Price:       3500,
			Category:    "Stationery",
			Images:      []string{"https://picsum.photos/400/500?random=15"},
			IsPreOrder:  true,
			Rating:      4.9,
		},
		{
			ID:            "co-1",
			Name:          "Custom Art Canvas - Abstract",
			Description:   "Personalized abstract art canvas. Contact us to specify your color palette and dimensions.",
			Price:         8500,
			Category:      "Home Decor",
			Images:        []string{"https://picsum.photos/400/500?random=16"},
			IsCustomOrder: true,
			Rating:        5.0,
		},
		{
			ID:            "co-2",
			Name:          "Custom Engraved Nameplate",
			Description:   "Brass nameplate with custom engraving for your home entrance.",
			Price:         3200,
			Category:      "Home Decor",
			Images:        []string{"https://picsum.photos/400/500?random=17"},
			IsCustomOrder: true,
			Rating:        4.8,
		},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
