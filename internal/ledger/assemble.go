package ledger

import (
	"sort"

	"github.com/collate-dev/collate/internal/model"
)

// Assemble merges adapter outputs into one date-sorted ledger and computes
// its duplicate groups. Sorting is stable; rows without a parsed date sort
// after all dated rows and keep their concatenation order among themselves.
// Identical inputs always produce identical output: there is no clock or
// map-order dependence anywhere in the pass.
func Assemble(sets ...[]model.Record) ([]model.Record, []Group) {
	var all []model.Record
	for _, set := range sets {
		all = append(all, set...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		switch {
		case a.Date == nil:
			return false
		case b.Date == nil:
			return true
		default:
			return a.Date.Before(*b.Date)
		}
	})

	return all, FindDuplicates(all)
}
