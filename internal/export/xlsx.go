package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/collate-dev/collate/internal/ledger"
	"github.com/collate-dev/collate/internal/model"
)

// sheetName is the single worksheet holding the ledger.
const sheetName = "Transactions"

// XLSXSink writes the ledger as a spreadsheet with a solid fill across every
// cell of a duplicate-group member row.
type XLSXSink struct{}

// Write renders records and groups to an xlsx file at path.
func (s *XLSXSink) Write(path string, records []model.Record, groups []ledger.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for col, name := range Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellStr(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range records {
		for col, value := range row(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellStr(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
	}

	if err := s.fillGroups(f, groups); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// fillGroups applies one solid-fill style per group to its member rows.
func (s *XLSXSink) fillGroups(f *excelize.File, groups []ledger.Group) error {
	// One style per palette color; groups sharing a color share a style.
	styles := make(map[string]int)
	for _, g := range groups {
		styleID, ok := styles[g.Color]
		if !ok {
			var err error
			styleID, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{g.Color}},
			})
			if err != nil {
				return fmt.Errorf("creating fill style %s: %w", g.Color, err)
			}
			styles[g.Color] = styleID
		}

		for _, idx := range g.Indices {
			rowNum := idx + 2 // +1 header, +1 one-based
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(Header), rowNum)
			if err := f.SetCellStyle(sheetName, first, last, styleID); err != nil {
				return fmt.Errorf("styling row %d: %w", rowNum, err)
			}
		}
	}
	return nil
}
