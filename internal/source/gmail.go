package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/collate-dev/collate/internal/model"
	"github.com/collate-dev/collate/internal/normalize"
)

// GmailParser parses the intermediate CSV produced by the mailbox scanner.
// Columns: Date, Amount, Supplier, Subject.
type GmailParser struct{}

// Name returns the parser name.
func (p *GmailParser) Name() string { return "gmail" }

// Parse reads a scanner output file and returns canonical records.
func (p *GmailParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading gmail CSV: %w", err)
	}
	if len(rows) <= 1 {
		return Result{}, nil
	}

	idx := columnIndex(rows[0])
	res := Result{Rows: len(rows) - 1}
	for _, rec := range rows[1:] {
		desc := field(rec, idx, "Subject")
		if supplier := field(rec, idx, "Supplier"); supplier != "" {
			desc += " - " + supplier
		}
		res.Records = append(res.Records, model.Record{
			Date:        normalize.Date(field(rec, idx, "Date")),
			Amount:      normalize.Amount(field(rec, idx, "Amount")),
			Description: desc,
			Source:      model.SourceGmail,
		})
	}
	return res, nil
}
