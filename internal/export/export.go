// Package export renders the assembled ledger to a tabular file, coloring
// the rows of each duplicate group so a reviewer can eyeball probable
// duplicates.
package export

import (
	"github.com/collate-dev/collate/internal/ledger"
	"github.com/collate-dev/collate/internal/model"
)

// ledgerDateFormat is the output timestamp format: reference zone, seconds
// precision, no offset.
const ledgerDateFormat = "2006-01-02 15:04:05"

// Header lists the ledger columns in output order.
var Header = []string{"date", "amount", "description", "source"}

// Sink writes a sorted ledger plus its duplicate groups to path.
type Sink interface {
	Write(path string, records []model.Record, groups []ledger.Group) error
}

// row renders one record as output cells. Absent date and amount come out
// blank, never as a zero value.
func row(r model.Record) []string {
	cells := make([]string, len(Header))
	if r.HasDate() {
		cells[0] = r.Date.Format(ledgerDateFormat)
	}
	if r.HasAmount() {
		cells[1] = r.Amount.Decimal.StringFixed(2)
	}
	cells[2] = r.Description
	cells[3] = string(r.Source)
	return cells
}

// colorByRow flattens groups into a record-index -> color lookup.
func colorByRow(groups []ledger.Group) map[int]string {
	colors := make(map[int]string)
	for _, g := range groups {
		for _, i := range g.Indices {
			if _, ok := colors[i]; !ok {
				colors[i] = g.Color
			}
		}
	}
	return colors
}
