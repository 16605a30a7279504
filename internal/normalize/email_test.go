package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailAmount_Simple(t *testing.T) {
	got := EmailAmount("Your order total is £42.99. Thanks!")
	require.True(t, got.Valid)
	assert.Equal(t, "42.99", got.Decimal.StringFixed(2))
}

func TestEmailAmount_Thousands(t *testing.T) {
	got := EmailAmount("Invoice amount: £1,234.56 due within 30 days")
	require.True(t, got.Valid)
	assert.Equal(t, "1234.56", got.Decimal.StringFixed(2))
}

func TestEmailAmount_SpaceAfterSymbol(t *testing.T) {
	got := EmailAmount("charged £ 9.99 to your card")
	require.True(t, got.Valid)
	assert.Equal(t, "9.99", got.Decimal.StringFixed(2))
}

func TestEmailAmount_FirstOccurrenceOnly(t *testing.T) {
	got := EmailAmount("Subtotal: £10.00\nShipping: £2.50\nTotal: £12.50")
	require.True(t, got.Valid)
	assert.Equal(t, "10.00", got.Decimal.StringFixed(2))
}

func TestEmailAmount_NoMatch(t *testing.T) {
	assert.False(t, EmailAmount("no money here").Valid)
	assert.False(t, EmailAmount("").Valid)
	// Two decimal places are required.
	assert.False(t, EmailAmount("about £5 total").Valid)
}
