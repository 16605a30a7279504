package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/collate-dev/collate/internal/model"
	"github.com/collate-dev/collate/internal/normalize"
)

// PayPalParser parses a PayPal activity export.
// Columns: Date, Status, Type, Amount, Name.
type PayPalParser struct{}

const (
	paypalStatusCompleted = "Completed"
	paypalTypeDeposit     = "Bank deposit to PayPal account"
)

// Name returns the parser name.
func (p *PayPalParser) Name() string { return "paypal" }

// Parse reads a PayPal export and returns canonical records. Rows that are
// not completed purchases (pending, or funding deposits into the PayPal
// balance) are filtered out rather than skipped as errors.
func (p *PayPalParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading paypal CSV: %w", err)
	}
	if len(rows) <= 1 {
		return Result{}, nil
	}

	idx := columnIndex(rows[0])
	res := Result{Rows: len(rows) - 1}
	for _, rec := range rows[1:] {
		if field(rec, idx, "Status") != paypalStatusCompleted {
			continue
		}
		if field(rec, idx, "Type") == paypalTypeDeposit {
			continue
		}
		res.Records = append(res.Records, model.Record{
			Date:        normalize.Date(field(rec, idx, "Date")),
			Amount:      normalize.Amount(field(rec, idx, "Amount")),
			Description: field(rec, idx, "Name"),
			Source:      model.SourcePayPal,
		})
	}
	return res, nil
}
