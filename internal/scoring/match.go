package scoring

import (
	"math"

	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/types"
)

// MatchRate computes the 0-100 match percentage for one observation against
// its trait's baseline.
//
// Numeric traits with a positive baseline score as a percentage of baseline:
// higher-is-better uses user/baseline, lower-is-better mirrors the user value
// around the baseline with (2*baseline - user)/baseline, so sitting exactly
// on the baseline is always 100. Both are capped at 100 and floored at 0;
// the lower-is-better formula goes negative once the user value passes twice
// the baseline, and the floor keeps the rate inside the documented [0, 100]
// range. Categorical traits score 100 on equality, 0 otherwise. Any pair
// that cannot be compared (value on one side only, or a non-positive numeric
// baseline) scores 0.
func MatchRate(obs types.Observation, baseline types.Baseline, direction types.Direction) float64 {
	if obs.Numeric != nil && baseline.Numeric != nil && *baseline.Numeric > 0 {
		user := *obs.Numeric
		base := *baseline.Numeric

		var rate float64
		if direction == types.DirectionLowerBetter {
			rate = (2*base - user) / base * 100
		} else {
			rate = user / base * 100
		}
		return clamp(round2(rate), 0, 100)
	}

	if obs.Category != nil && baseline.Category != nil {
		if *obs.Category == *baseline.Category {
			return 100
		}
		return 0
	}

	return 0
}

// Score pairs every observation in the population with its trait's baseline
// and produces one match record per observation. Employees with no
// observation for a trait produce no record for it: absence stays absence,
// so it is omitted from averaging rather than pulling it toward zero.
// Observations for traits the catalog does not define are skipped.
func Score(observations []types.Observation, baselines map[string]types.Baseline, cat *catalog.Catalog) []types.MatchRecord {
	records := make([]types.MatchRecord, 0, len(observations))

	for _, obs := range observations {
		tv := cat.Lookup(obs.TraitName)
		if tv == nil {
			continue
		}
		baseline := baselines[obs.TraitName]

		records = append(records, types.MatchRecord{
			EmployeeID:       obs.EmployeeID,
			TraitName:        obs.TraitName,
			GroupName:        tv.Group,
			UserNumeric:      obs.Numeric,
			UserCategory:     obs.Category,
			BaselineNumeric:  baseline.Numeric,
			BaselineCategory: baseline.Category,
			MatchRate:        MatchRate(obs, baseline, tv.Direction),
		})
	}

	return records
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
