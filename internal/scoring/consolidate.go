// Package scoring implements the talent-match engine: consolidating raw
// trait records into observations, deriving per-trait baselines from the
// benchmark cohort, scoring each observation against its baseline, and
// rolling trait scores up to group and final scores.
package scoring

import (
	"sort"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/types"
)

// Consolidate reshapes raw per-employee trait records into the tall
// observation collection the rest of the engine consumes. For every trait
// the catalog defines, an observation is emitted if and only if the record
// carries a value in the trait's source column; absent values are omitted,
// never emitted as zero or empty string. Traits mapped to columns the source
// never supplies simply produce no observations.
func Consolidate(records []types.TraitRecord, cat *catalog.Catalog) []types.Observation {
	observations := make([]types.Observation, 0, len(records)*len(cat.Traits))

	for _, rec := range records {
		for _, tv := range cat.Traits {
			switch tv.Kind {
			case types.KindNumeric:
				if v, ok := rec.Numeric[tv.SourceColumn]; ok {
					value := v
					observations = append(observations, types.Observation{
						EmployeeID: rec.EmployeeID,
						TraitName:  tv.Name,
						Numeric:    &value,
					})
				}
			case types.KindCategorical:
				if v, ok := rec.Category[tv.SourceColumn]; ok {
					value := v
					observations = append(observations, types.Observation{
						EmployeeID: rec.EmployeeID,
						TraitName:  tv.Name,
						Category:   &value,
					})
				}
			}
		}
	}

	sort.SliceStable(observations, func(i, j int) bool {
		if observations[i].EmployeeID != observations[j].EmployeeID {
			return observations[i].EmployeeID < observations[j].EmployeeID
		}
		return observations[i].TraitName < observations[j].TraitName
	})

	return observations
}
