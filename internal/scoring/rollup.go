package scoring

import (
	"sort"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/types"
)

// RollupGroups averages each employee's trait match rates within a trait
// group, weighted by the trait's catalog weight and rounded to 2 decimal
// places. Groups an employee has no match records for produce no GroupMatch:
// an absent term, not a zero-weighted one.
func RollupGroups(records []types.MatchRecord, cat *catalog.Catalog) []types.GroupMatch {
	type key struct {
		employeeID string
		group      string
	}
	type acc struct {
		weighted float64
		weight   float64
	}

	sums := make(map[key]*acc)
	for _, rec := range records {
		tv := cat.Lookup(rec.TraitName)
		if tv == nil {
			continue
		}
		k := key{employeeID: rec.EmployeeID, group: rec.GroupName}
		a := sums[k]
		if a == nil {
			a = &acc{}
			sums[k] = a
		}
		a.weighted += rec.MatchRate * tv.Weight
		a.weight += tv.Weight
	}

	groups := make([]types.GroupMatch, 0, len(sums))
	for k, a := range sums {
		if a.weight == 0 {
			continue
		}
		groups = append(groups, types.GroupMatch{
			EmployeeID: k.employeeID,
			GroupName:  k.group,
			MatchRate:  round2(a.weighted / a.weight),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].EmployeeID != groups[j].EmployeeID {
			return groups[i].EmployeeID < groups[j].EmployeeID
		}
		return groups[i].GroupName < groups[j].GroupName
	})

	return groups
}

// RollupFinal averages each employee's group match rates across the groups
// present for that employee, weighted by the group's catalog weight
// (1.0 when unspecified), clamped to at most 100 and rounded to 2 decimal
// places.
func RollupFinal(groups []types.GroupMatch, cat *catalog.Catalog) []types.FinalMatch {
	type acc struct {
		weighted float64
		weight   float64
	}

	sums := make(map[string]*acc)
	for _, gm := range groups {
		a := sums[gm.EmployeeID]
		if a == nil {
			a = &acc{}
			sums[gm.EmployeeID] = a
		}
		w := cat.GroupWeight(gm.GroupName)
		a.weighted += gm.MatchRate * w
		a.weight += w
	}

	finals := make([]types.FinalMatch, 0, len(sums))
	for employeeID, a := range sums {
		if a.weight == 0 {
			continue
		}
		rate := round2(a.weighted / a.weight)
		if rate > 100 {
			rate = 100
		}
		finals = append(finals, types.FinalMatch{
			EmployeeID: employeeID,
			MatchRate:  rate,
		})
	}

	sort.Slice(finals, func(i, j int) bool {
		return finals[i].EmployeeID < finals[j].EmployeeID
	})

	return finals
}
