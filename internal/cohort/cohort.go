// Package cohort selects the benchmark set of employee identifiers a scoring
// run compares the population against. Two interchangeable strategies produce
// the same set type: an explicit caller-supplied identifier list, and a
// predicate over annual performance history.
package cohort

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kartika/talent-match-intel/internal/types"
)

// MaxExplicitBenchmark is the benchmark size the vacancy form caps explicit
// selection at. Larger sets are accepted by the engine; callers may warn.
const MaxExplicitBenchmark = 3

// Cohort is a deduplicated set of benchmark employee identifiers.
type Cohort struct {
	ids map[string]bool
}

// FromIDs builds a cohort from an explicit identifier list, trimming
// whitespace and dropping duplicates and empty entries.
func FromIDs(ids []string) (*Cohort, error) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = true
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("benchmark employee list is empty")
	}
	return &Cohort{ids: set}, nil
}

// FromTopRating builds a cohort from performance history: employees whose
// most recent annual rating equals the highest rating observed in that year
// across the population. An empty history yields an empty cohort, which
// degrades to absent baselines downstream rather than failing the run.
func FromTopRating(records []types.PerformanceRecord) *Cohort {
	latest := make(map[string]types.PerformanceRecord, len(records))
	for _, rec := range records {
		if prev, ok := latest[rec.EmployeeID]; !ok || rec.Year > prev.Year {
			latest[rec.EmployeeID] = rec
		}
	}

	top := 0
	for _, rec := range latest {
		if rec.Rating > top {
			top = rec.Rating
		}
	}

	set := make(map[string]bool)
	for id, rec := range latest {
		if top > 0 && rec.Rating == top {
			set[id] = true
		}
	}
	return &Cohort{ids: set}
}

// Empty reports whether the cohort has no members.
func (c *Cohort) Empty() bool {
	return c == nil || len(c.ids) == 0
}

// Size returns the number of benchmark employees.
func (c *Cohort) Size() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Contains reports benchmark membership for one employee.
func (c *Cohort) Contains(employeeID string) bool {
	return c != nil && c.ids[employeeID]
}

// IDs returns the member identifiers in ascending order.
func (c *Cohort) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.ids))
	for id := range c.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
