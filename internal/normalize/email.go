package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// emailAmountPattern matches a GBP amount in free text: currency symbol,
// digits with optional thousands separators, exactly two decimal places.
var emailAmountPattern = regexp.MustCompile(`£\s*([\d,]+\.\d{2})`)

// EmailAmount extracts the first currency amount from a plain-text email
// body. Only the first occurrence is used: a body listing subtotal and
// total yields the subtotal. Known limitation, kept deliberately.
func EmailAmount(body string) decimal.NullDecimal {
	m := emailAmountPattern.FindStringSubmatch(body)
	if m == nil {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
