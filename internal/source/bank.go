package source

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/collate-dev/collate/internal/model"
	"github.com/collate-dev/collate/internal/normalize"
)

// BankParser parses a bank statement export.
// Columns: Date, Amount, Description.
//
// Bank exports are the messiest input: lines with stray quotes or extra
// fields are skipped outright and counted, never retried. Short rows are
// not malformed; a missing trailing column just leaves its fields absent.
type BankParser struct{}

// Name returns the parser name.
func (p *BankParser) Name() string { return "bank" }

// Parse reads a bank export and returns canonical records.
func (p *BankParser) Parse(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, nil
		}
		return Result{}, err
	}
	idx := columnIndex(header)

	var res Result
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		res.Rows++
		if err != nil {
			res.Skipped++
			continue
		}
		if len(rec) > len(header) {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, model.Record{
			Date:        normalize.Date(field(rec, idx, "Date")),
			Amount:      normalize.Amount(field(rec, idx, "Amount")),
			Description: field(rec, idx, "Description"),
			Source:      model.SourceBank,
		})
	}
	return res, nil
}
