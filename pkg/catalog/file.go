package catalog

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/resultflow/careflow/pkg/domain"
)

// fileEntry mirrors one catalog entry in the YAML document. It uses
// mapstructure tags so the decoded generic YAML maps onto typed structs.
type fileEntry struct {
	Title           string        `mapstructure:"title"`
	Description     string        `mapstructure:"description"`
	Products        []fileProduct `mapstructure:"products"`
	DiscountPercent int           `mapstructure:"discount_percent"`
	SavingsAmount   float64       `mapstructure:"savings_amount"`
}

type fileProduct struct {
	ID    string  `mapstructure:"id"`
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
	Image string  `mapstructure:"image"`
}

// LoadFile reads a YAML catalog of the shape:
//
//	hair:
//	  title: ...
//	  products:
//	    - id: ...
//	      name: ...
//	      price: 28.5
//	skin:
//	  ...
//
// Unknown top-level categories are rejected so typos surface at load time.
func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	entries := make(map[domain.Category]domain.RecommendationBlock, len(doc))
	for key, val := range doc {
		category := domain.Category(key)
		if category != domain.CategoryHair && category != domain.CategorySkin {
			return nil, fmt.Errorf("unknown catalog category %q", key)
		}

		var entry fileEntry
		if err := mapstructure.Decode(val, &entry); err != nil {
			return nil, fmt.Errorf("failed to decode catalog entry %q: %w", key, err)
		}

		products := make([]domain.Product, 0, len(entry.Products))
		for _, p := range entry.Products {
			products = append(products, domain.Product{
				ID:    p.ID,
				Name:  p.Name,
				Price: p.Price,
				Image: p.Image,
			})
		}
		entries[category] = domain.RecommendationBlock{
			Title:           entry.Title,
			Description:     entry.Description,
			Products:        products,
			DiscountPercent: entry.DiscountPercent,
			SavingsAmount:   entry.SavingsAmount,
		}
	}

	return NewStatic(entries), nil
}
