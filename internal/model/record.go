package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies where a record was ingested from. The string value is
// the label written to the output ledger.
type Source string

const (
	SourceGmail  Source = "Gmail"
	SourceAmazon Source = "Amazon"
	SourcePayPal Source = "PayPal"
	SourceBank   Source = "Bank"
)

// Record is the canonical transaction shape every source normalizes into.
// Date and Amount are optional: a row that fails parsing keeps its place in
// the ledger with the field absent rather than being dropped.
type Record struct {
	Date        *time.Time          // UTC instant; nil when unparseable
	Amount      decimal.NullDecimal // invalid when unparseable
	Description string
	Source      Source
}

// HasDate reports whether the record carries a parsed instant.
func (r Record) HasDate() bool { return r.Date != nil }

// HasAmount reports whether the record carries a parsed amount.
func (r Record) HasAmount() bool { return r.Amount.Valid }
