package ledger

import (
	"time"

	"github.com/collate-dev/collate/internal/model"
)

// Window is the symmetric date window for duplicate candidacy, inclusive on
// both sides.
const Window = 7 * 24 * time.Hour

// Palette holds the cyclic fill colors assigned to duplicate groups. Reuse
// across distant groups carries no meaning; the colors only separate
// adjacent groups visually.
var Palette = []string{
	"FFB6C1", "AFEEEE", "98FB98", "DDA0DD", "F0E68C", "E6E6FA", "FFB347",
}

// Group is one set of probable-duplicate records. Indices point into the
// sorted ledger slice and always number at least two.
type Group struct {
	Indices []int
	Color   string
}

// FindDuplicates partitions records into probable-duplicate groups using a
// greedy single pass: walk records in date order, and for each ungrouped
// anchor collect every other record with exactly the same amount dated
// within the window either side. Records missing an amount or a date never
// participate.
//
// Grouping is anchored, not pairwise-closed: two records each within the
// window of the anchor but outside the window of each other share a group.
// Likewise, an anchor whose matches already belong to a group joins that
// group, chaining A-B-C spans wider than the window into one group. This
// looseness is intentional and relied upon downstream for visual density.
// Do not tighten it into a transitive-closure clustering.
func FindDuplicates(records []model.Record) []Group {
	// Candidates in ledger order; the caller sorts by date ascending.
	var candidates []int
	for i, r := range records {
		if r.HasAmount() && r.HasDate() {
			candidates = append(candidates, i)
		}
	}

	var groups []Group
	grouped := make(map[int]int) // record index -> group index

	for _, anchor := range candidates {
		if _, ok := grouped[anchor]; ok {
			continue
		}

		var matches []int
		for _, other := range candidates {
			if other == anchor {
				continue
			}
			if !records[other].Amount.Decimal.Equal(records[anchor].Amount.Decimal) {
				continue
			}
			if !withinWindow(*records[anchor].Date, *records[other].Date) {
				continue
			}
			matches = append(matches, other)
		}
		if len(matches) == 0 {
			continue
		}

		gi := -1
		for _, m := range matches {
			if existing, ok := grouped[m]; ok {
				gi = existing
				break
			}
		}
		if gi < 0 {
			gi = len(groups)
			groups = append(groups, Group{Color: Palette[len(groups)%len(Palette)]})
		}

		for _, m := range append(matches, anchor) {
			if _, ok := grouped[m]; !ok {
				grouped[m] = gi
				groups[gi].Indices = append(groups[gi].Indices, m)
			}
		}
	}
	return groups
}

func withinWindow(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= Window
}
