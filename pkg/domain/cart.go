package domain

// CartItem is a product line in the cart.
// Invariant: Quantity >= 1. A quantity reaching zero removes the line;
// the collection is unique by ProductID.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}
