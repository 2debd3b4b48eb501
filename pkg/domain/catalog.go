package domain

// Product is a purchasable catalog entry.
type Product struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
	Image string  `json:"image,omitempty" yaml:"image,omitempty"`
}

// RecommendationBlock is a titled bundle of products shown in response to
// confirmed concerns. It is a snapshot taken from the catalog at creation
// time and does not track later catalog changes.
type RecommendationBlock struct {
	Title           string    `json:"title" yaml:"title"`
	Description     string    `json:"description" yaml:"description"`
	Products        []Product `json:"products" yaml:"products"`
	DiscountPercent int       `json:"discount_percent,omitempty" yaml:"discount_percent,omitempty"`
	SavingsAmount   float64   `json:"savings_amount,omitempty" yaml:"savings_amount,omitempty"`
}
