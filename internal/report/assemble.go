// Package report joins the engine's score collections with employee
// descriptive attributes into the flat result rows the dashboard and
// exporters consume. It owns no score computation.
package report

import (
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/kartika/talent-match-intel/internal/cohort"
	"github.com/kartika/talent-match-intel/internal/types"
)

// AssembleOptions carries the inputs for one assembly pass.
type AssembleOptions struct {
	JobVacancyID uuid.UUID
	Role         types.RoleInput
	Records      []types.MatchRecord
	Groups       []types.GroupMatch
	Finals       []types.FinalMatch
	// Attributes maps employee ID to descriptive attributes. Employees
	// without an entry keep empty descriptive fields rather than being
	// dropped.
	Attributes map[string]types.Employee
	// Benchmark, when ExcludeBenchmark is set, is removed from the output.
	Benchmark        *cohort.Cohort
	ExcludeBenchmark bool
}

// Assemble produces one row per (employee, trait group, trait) triple,
// ordered by final match rate descending, then employee ID, trait group
// name, and trait name ascending.
func Assemble(opts AssembleOptions) []types.ResultRow {
	groupRates := make(map[string]map[string]float64, len(opts.Finals))
	for _, gm := range opts.Groups {
		if groupRates[gm.EmployeeID] == nil {
			groupRates[gm.EmployeeID] = make(map[string]float64)
		}
		groupRates[gm.EmployeeID][gm.GroupName] = gm.MatchRate
	}
	finalRates := make(map[string]float64, len(opts.Finals))
	for _, fm := range opts.Finals {
		finalRates[fm.EmployeeID] = fm.MatchRate
	}

	rows := make([]types.ResultRow, 0, len(opts.Records))
	for _, rec := range opts.Records {
		if opts.ExcludeBenchmark && opts.Benchmark.Contains(rec.EmployeeID) {
			continue
		}

		attrs := opts.Attributes[rec.EmployeeID]
		rows = append(rows, types.ResultRow{
			JobVacancyID:   opts.JobVacancyID.String(),
			RoleName:       opts.Role.RoleName,
			JobLevel:       opts.Role.JobLevel,
			RolePurpose:    opts.Role.RolePurpose,
			EmployeeID:     rec.EmployeeID,
			FullName:       attrs.FullName,
			Directorate:    attrs.Directorate,
			Position:       attrs.Position,
			Grade:          attrs.Grade,
			TGVName:        rec.GroupName,
			TVName:         rec.TraitName,
			BaselineScore:  formatValue(rec.BaselineNumeric, rec.BaselineCategory),
			UserScore:      formatValue(rec.UserNumeric, rec.UserCategory),
			TVMatchRate:    rec.MatchRate,
			TGVMatchRate:   groupRates[rec.EmployeeID][rec.GroupName],
			FinalMatchRate: finalRates[rec.EmployeeID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FinalMatchRate != rows[j].FinalMatchRate {
			return rows[i].FinalMatchRate > rows[j].FinalMatchRate
		}
		if rows[i].EmployeeID != rows[j].EmployeeID {
			return rows[i].EmployeeID < rows[j].EmployeeID
		}
		if rows[i].TGVName != rows[j].TGVName {
			return rows[i].TGVName < rows[j].TGVName
		}
		return rows[i].TVName < rows[j].TVName
	})

	return rows
}

// RankedEmployee is the employee-level view of the result: one entry per
// employee, used for the ranked talent list.
type RankedEmployee struct {
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"fullname"`
	Position       string  `json:"position"`
	FinalMatchRate float64 `json:"final_match_rate"`
}

// RankedEmployees dedupes result rows down to one entry per employee,
// sorted by final match rate descending then employee ID ascending.
func RankedEmployees(rows []types.ResultRow) []RankedEmployee {
	seen := make(map[string]bool)
	ranked := make([]RankedEmployee, 0)
	for _, row := range rows {
		if seen[row.EmployeeID] {
			continue
		}
		seen[row.EmployeeID] = true
		ranked = append(ranked, RankedEmployee{
			EmployeeID:     row.EmployeeID,
			FullName:       row.FullName,
			Position:       row.Position,
			FinalMatchRate: row.FinalMatchRate,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FinalMatchRate != ranked[j].FinalMatchRate {
			return ranked[i].FinalMatchRate > ranked[j].FinalMatchRate
		}
		return ranked[i].EmployeeID < ranked[j].EmployeeID
	})

	return ranked
}

// Insights summarizes a run the way the dashboard's quick-insights panel
// does: the best match and the median final rate across ranked employees.
type Insights struct {
	TopEmployeeID   string  `json:"top_employee_id"`
	TopFullName     string  `json:"top_fullname"`
	TopMatchRate    float64 `json:"top_match_rate"`
	MedianMatchRate float64 `json:"median_match_rate"`
}

// Summarize computes insights over the ranked employee list. Returns nil
// when the list is empty.
func Summarize(ranked []RankedEmployee) *Insights {
	if len(ranked) == 0 {
		return nil
	}

	rates := make([]float64, len(ranked))
	for i, r := range ranked {
		rates[i] = r.FinalMatchRate
	}
	sort.Float64s(rates)

	n := len(rates)
	median := rates[n/2]
	if n%2 == 0 {
		median = (rates[n/2-1] + rates[n/2]) / 2
	}

	return &Insights{
		TopEmployeeID:   ranked[0].EmployeeID,
		TopFullName:     ranked[0].FullName,
		TopMatchRate:    ranked[0].FinalMatchRate,
		MedianMatchRate: median,
	}
}

// formatValue renders a baseline or user value for display: numeric values
// with 3 decimal places, categorical values verbatim, absent values empty.
func formatValue(numeric *float64, category *string) string {
	if numeric != nil {
		return strconv.FormatFloat(*numeric, 'f', 3, 64)
	}
	if category != nil {
		return *category
	}
	return ""
}
