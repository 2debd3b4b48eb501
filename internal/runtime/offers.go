package runtime

import (
	"strings"

	"github.com/resultflow/careflow/pkg/domain"
)

// offerRule pairs a card-number predicate with a static offer. The table is
// ordered and first match wins; it is a display-only lookup keyed by the
// leading digit, not a BIN database.
type offerRule struct {
	matches func(number string) bool
	offer   domain.CardOffer
}

func leadingDigit(d byte) func(string) bool {
	return func(number string) bool {
		return len(number) > 0 && number[0] == d
	}
}

var cardOffers = []offerRule{
	{
		matches: leadingDigit('3'),
		offer: domain.CardOffer{
			CardType:        "American Express",
			DiscountPercent: 8,
			Benefits: []string{
				"8% statement credit on wellness orders",
				"Extended return window",
			},
		},
	},
	{
		matches: leadingDigit('4'),
		offer: domain.CardOffer{
			CardType:        "Bank of America",
			DiscountPercent: 11,
			Benefits: []string{
				"11% off this order",
				"Free 2-day shipping",
				"Purchase protection included",
			},
		},
	},
	{
		matches: leadingDigit('5'),
		offer: domain.CardOffer{
			CardType:        "Chase",
			DiscountPercent: 7,
			Benefits: []string{
				"7% cash back on subscriptions",
				"Free standard shipping",
			},
		},
	},
	{
		matches: leadingDigit('6'),
		offer: domain.CardOffer{
			CardType:        "Discover",
			DiscountPercent: 5,
			Benefits: []string{
				"5% cash back this quarter",
			},
		},
	},
}

// OfferFor derives the display offer for a card number. Separators are
// ignored; unmatched prefixes yield nil.
func OfferFor(cardNumber string) *domain.CardOffer {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cardNumber)

	for _, rule := range cardOffers {
		if rule.matches(digits) {
			offer := rule.offer
			return &offer
		}
	}
	return nil
}
