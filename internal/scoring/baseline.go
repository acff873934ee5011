package scoring

import (
	"sort"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/cohort"
	"github.com/kartika/talent-match-intel/internal/types"
)

// ComputeBaselines derives one baseline per catalog trait from the benchmark
// cohort's observations. Numeric traits take the interpolated median of the
// cohort's values; categorical traits take the mode, ties broken by the
// first category in ascending order. A trait with no cohort observations
// yields a baseline with both fields absent, which downstream scoring treats
// as "no comparable pair". Every catalog trait gets a baseline record.
func ComputeBaselines(observations []types.Observation, bench *cohort.Cohort, cat *catalog.Catalog) map[string]types.Baseline {
	numeric := make(map[string][]float64)
	categories := make(map[string]map[string]int)

	for _, obs := range observations {
		if !bench.Contains(obs.EmployeeID) {
			continue
		}
		if obs.Numeric != nil {
			numeric[obs.TraitName] = append(numeric[obs.TraitName], *obs.Numeric)
		}
		if obs.Category != nil {
			if categories[obs.TraitName] == nil {
				categories[obs.TraitName] = make(map[string]int)
			}
			categories[obs.TraitName][*obs.Category]++
		}
	}

	baselines := make(map[string]types.Baseline, len(cat.Traits))
	for _, tv := range cat.Traits {
		baseline := types.Baseline{TraitName: tv.Name}

		if values := numeric[tv.Name]; len(values) > 0 {
			med := median(values)
			baseline.Numeric = &med
		}
		if counts := categories[tv.Name]; len(counts) > 0 {
			m := mode(counts)
			baseline.Category = &m
		}

		baselines[tv.Name] = baseline
	}

	return baselines
}

// median returns the interpolated median: the middle order statistic for odd
// counts, the mean of the two central order statistics for even counts.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the most frequent category; ties go to the first category in
// ascending order so repeated runs stay deterministic.
func mode(counts map[string]int) string {
	best := ""
	bestCount := 0
	for category, count := range counts {
		if count > bestCount || (count == bestCount && category < best) {
			best = category
			bestCount = count
		}
	}
	return best
}
