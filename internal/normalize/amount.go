package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPattern is deliberately permissive: an optional sign, digits, an
// optional fractional part. First match wins.
var numericPattern = regexp.MustCompile(`[-+]?\d+\.?\d*`)

// currencyStripper drops currency symbols and thousands separators before
// the numeric scan.
var currencyStripper = strings.NewReplacer("£", "", "$", "", "€", "", ",", "")

// Amount parses a free-form monetary string into a signed decimal. Empty
// input, or input with no numeric substring, yields an invalid NullDecimal.
// It never fails: unparseable is a terminal state, not an error.
func Amount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}

	s = currencyStripper.Replace(s)
	match := numericPattern.FindString(s)
	if match == "" {
		return decimal.NullDecimal{}
	}
	// "12." matches the pattern but not the decimal parser.
	match = strings.TrimSuffix(match, ".")

	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
