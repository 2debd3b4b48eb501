package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resultflow/careflow/internal/runtime"
)

func TestOfferFor(t *testing.T) {
	cases := []struct {
		name     string
		number   string
		cardType string
		percent  int
	}{
		{"Amex Bucket", "371449635398431", "American Express", 8},
		{"Visa Range Maps To BoA", "4111111111111111", "Bank of America", 11},
		{"Mastercard Range Maps To Chase", "5500005555555559", "Chase", 7},
		{"Discover Bucket", "6011000990139424", "Discover", 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			offer := runtime.OfferFor(tc.number)
			require.NotNil(t, offer)
			assert.Equal(t, tc.cardType, offer.CardType)
			assert.Equal(t, tc.percent, offer.DiscountPercent)
			assert.NotEmpty(t, offer.Benefits)
		})
	}
}

func TestOfferFor_NoMatch(t *testing.T) {
	for _, number := range []string{"", "9999888877776666", "12", "-- --"} {
		assert.Nil(t, runtime.OfferFor(number), "number %q", number)
	}
}

func TestOfferFor_IgnoresSeparators(t *testing.T) {
	offer := runtime.OfferFor(" 4111-1111 1111-1111 ")
	require.NotNil(t, offer)
	assert.Equal(t, "Bank of America", offer.CardType)
}
