package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/collate-dev/collate/internal/model"
	"github.com/collate-dev/collate/internal/normalize"
)

// AmazonParser parses an Amazon order-history export.
// Columns: date, total, items.
type AmazonParser struct{}

// Name returns the parser name.
func (p *AmazonParser) Name() string { return "amazon" }

// Parse reads an Amazon export and returns canonical records.
func (p *AmazonParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading amazon CSV: %w", err)
	}
	if len(rows) <= 1 {
		return Result{}, nil
	}

	idx := columnIndex(rows[0])
	res := Result{Rows: len(rows) - 1}
	for _, rec := range rows[1:] {
		res.Records = append(res.Records, model.Record{
			Date:        normalize.Date(field(rec, idx, "date")),
			Amount:      normalize.Amount(field(rec, idx, "total")),
			Description: field(rec, idx, "items"),
			Source:      model.SourceAmazon,
		})
	}
	return res, nil
}
