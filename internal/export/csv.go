package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/collate-dev/collate/internal/ledger"
	"github.com/collate-dev/collate/internal/model"
)

// CSVSink writes the ledger as CSV. Plain text has no fills, so the visual
// tag becomes a trailing dup_group column carrying the group color for
// member rows and nothing otherwise.
type CSVSink struct{}

// Write renders records and groups to a CSV file at path.
func (s *CSVSink) Write(path string, records []model.Record, groups []ledger.Group) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(append(append([]string{}, Header...), "dup_group")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	colors := colorByRow(groups)
	for i, r := range records {
		if err := cw.Write(append(row(r), colors[i])); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
