package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kartika/talent-match-intel/internal/types"
)

// csvHeader lists the export columns in the order the dashboard displays
// them: run header, employee attributes, then the three score levels.
var csvHeader = []string{
	"job_vacancy_id", "role_name", "job_level", "role_purpose",
	"employee_id", "fullname", "directorate", "position", "grade",
	"tgv_name", "tv_name", "baseline_score", "user_score",
	"tv_match_rate", "tgv_match_rate", "final_match_rate",
}

// WriteCSV renders the result rows as CSV, header first, preserving the
// row order produced by Assemble.
func WriteCSV(w io.Writer, rows []types.ResultRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.JobVacancyID, row.RoleName, row.JobLevel, row.RolePurpose,
			row.EmployeeID, row.FullName, row.Directorate, row.Position, row.Grade,
			row.TGVName, row.TVName, row.BaselineScore, row.UserScore,
			formatRate(row.TVMatchRate), formatRate(row.TGVMatchRate), formatRate(row.FinalMatchRate),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}
