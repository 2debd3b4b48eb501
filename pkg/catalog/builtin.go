// Package catalog provides ports.Catalog implementations: the built-in
// static catalog and a YAML-backed file catalog.
package catalog

import (
	"github.com/resultflow/careflow/pkg/domain"
)

// Static is a fixed in-memory catalog keyed by category.
type Static struct {
	entries map[domain.Category]domain.RecommendationBlock
}

// NewStatic creates a catalog from explicit entries.
func NewStatic(entries map[domain.Category]domain.RecommendationBlock) *Static {
	copied := make(map[domain.Category]domain.RecommendationBlock, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Static{entries: copied}
}

// Recommendation returns the entry for a category.
func (s *Static) Recommendation(category domain.Category) (domain.RecommendationBlock, bool) {
	rec, ok := s.entries[category]
	return rec, ok
}

// Builtin returns the stock demo catalog shipped with the widget.
func Builtin() *Static {
	return NewStatic(map[domain.Category]domain.RecommendationBlock{
		domain.CategoryHair: {
			Title:       "Your Personalized Hair Care Plan",
			Description: "Clinically-proven treatments targeting your specific hair concerns.",
			Products: []domain.Product{
				{ID: "hair-finasteride", Name: "Finasteride 1mg", Price: 28.50, Image: "/products/finasteride.png"},
				{ID: "hair-minoxidil", Name: "Minoxidil 5% Solution", Price: 15.00, Image: "/products/minoxidil.png"},
				{ID: "hair-shampoo", Name: "Thickening Shampoo", Price: 19.00, Image: "/products/thick-shampoo.png"},
				{ID: "hair-biotin", Name: "Biotin Gummies", Price: 16.00, Image: "/products/biotin.png"},
			},
			DiscountPercent: 15,
			SavingsAmount:   11.78,
		},
		domain.CategorySkin: {
			Title:       "Your Custom Skincare Routine",
			Description: "Dermatologist-recommended treatments for healthier-looking skin.",
			Products: []domain.Product{
				{ID: "skin-tretinoin", Name: "Custom Anti-Aging Cream", Price: 42.00, Image: "/products/anti-aging.png"},
				{ID: "skin-acne", Name: "Prescription Acne Cream", Price: 35.00, Image: "/products/acne-cream.png"},
				{ID: "skin-moisturizer", Name: "Everyday Moisturizer", Price: 22.00, Image: "/products/moisturizer.png"},
				{ID: "skin-cleanser", Name: "Deep Sea Cleanser", Price: 18.00, Image: "/products/cleanser.png"},
			},
			DiscountPercent: 10,
			SavingsAmount:   11.70,
		},
	})
}
