package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecord_Absence(t *testing.T) {
	var r Record
	assert.False(t, r.HasDate())
	assert.False(t, r.HasAmount())

	d := time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)
	r.Date = &d
	r.Amount = decimal.NullDecimal{Decimal: decimal.New(1299, -2), Valid: true}
	assert.True(t, r.HasDate())
	assert.True(t, r.HasAmount())
	assert.Equal(t, "12.99", r.Amount.Decimal.StringFixed(2))
}

func TestSource_Labels(t *testing.T) {
	assert.Equal(t, "Gmail", string(SourceGmail))
	assert.Equal(t, "Amazon", string(SourceAmazon))
	assert.Equal(t, "PayPal", string(SourcePayPal))
	assert.Equal(t, "Bank", string(SourceBank))
}
