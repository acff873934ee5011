package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/kartika/talent-match-intel/internal/types"
)

// FetchTraitRecords reads every row of profiles_psych and maps each column
// dynamically by name, so adding a trait column to the table and the catalog
// needs no Go change here. It returns the records and the source column
// names (for the catalog/schema mismatch check). NULL cells are omitted from
// the record maps; they mean "no observation", never zero.
func (db *DB) FetchTraitRecords(ctx context.Context) ([]types.TraitRecord, []string, error) {
	var records []types.TraitRecord
	var columns []string

	err := withRetry(ctx, func() error {
		rows, err := db.pool.Query(ctx, `SELECT * FROM profiles_psych`)
		if err != nil {
			return fmt.Errorf("failed to query trait records: %w", err)
		}
		defer rows.Close()

		fields := rows.FieldDescriptions()
		columns = columns[:0]
		for _, fd := range fields {
			columns = append(columns, fd.Name)
		}

		records = records[:0]
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return fmt.Errorf("failed to read trait record: %w", err)
			}
			rec, err := mapTraitRow(fields, values)
			if err != nil {
				return err
			}
			if rec.EmployeeID == "" {
				continue
			}
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, nil, err
	}
	return records, columns, nil
}

// mapTraitRow sorts one row's cells into numeric and categorical maps keyed
// by column name. The employee_id column is the record key, not a trait.
func mapTraitRow(fields []pgconn.FieldDescription, values []any) (types.TraitRecord, error) {
	rec := types.TraitRecord{
		Numeric:  make(map[string]float64),
		Category: make(map[string]string),
	}

	for i, fd := range fields {
		raw := values[i]
		if raw == nil {
			continue
		}
		name := fd.Name

		if name == "employee_id" {
			id, ok := raw.(string)
			if !ok {
				return rec, fmt.Errorf("employee_id column has unexpected type %T", raw)
			}
			rec.EmployeeID = id
			continue
		}

		switch v := raw.(type) {
		case float64:
			rec.Numeric[name] = v
		case float32:
			rec.Numeric[name] = float64(v)
		case int64:
			rec.Numeric[name] = float64(v)
		case int32:
			rec.Numeric[name] = float64(v)
		case int16:
			rec.Numeric[name] = float64(v)
		case pgtype.Numeric:
			f, err := numericToFloat(v)
			if err != nil {
				return rec, fmt.Errorf("column %s: %w", name, err)
			}
			rec.Numeric[name] = f
		case string:
			rec.Category[name] = v
		default:
			// Timestamps, UUIDs and other bookkeeping columns carry no
			// trait value.
		}
	}

	return rec, nil
}

// numericToFloat converts a Postgres numeric cell to float64.
func numericToFloat(n pgtype.Numeric) (float64, error) {
	if !n.Valid {
		return 0, fmt.Errorf("invalid numeric value")
	}
	if n.NaN {
		return 0, fmt.Errorf("numeric value is NaN")
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("failed to convert numeric value: %w", err)
	}
	return f.Float64, nil
}

// FetchPerformanceHistory reads the annual performance ratings used by the
// predicate-based cohort strategy.
func (db *DB) FetchPerformanceHistory(ctx context.Context) ([]types.PerformanceRecord, error) {
	var records []types.PerformanceRecord

	err := withRetry(ctx, func() error {
		rows, err := db.pool.Query(ctx,
			`SELECT employee_id, year, rating FROM performance_ratings`)
		if err != nil {
			return fmt.Errorf("failed to query performance history: %w", err)
		}
		defer rows.Close()

		records = records[:0]
		for rows.Next() {
			var rec types.PerformanceRecord
			if err := rows.Scan(&rec.EmployeeID, &rec.Year, &rec.Rating); err != nil {
				return fmt.Errorf("failed to scan performance record: %w", err)
			}
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchEmployeeAttributes reads the descriptive attributes for every
// employee, left-joining the dimension tables so employees with missing
// dimension rows keep empty fields instead of disappearing.
func (db *DB) FetchEmployeeAttributes(ctx context.Context) (map[string]types.Employee, error) {
	attrs := make(map[string]types.Employee)

	err := withRetry(ctx, func() error {
		rows, err := db.pool.Query(ctx,
			`SELECT e.employee_id, e.fullname,
			        COALESCE(d.name, ''), COALESCE(p.name, ''), COALESCE(g.name, '')
			 FROM employees e
			 LEFT JOIN dim_directorates d ON d.directorate_id = e.directorate_id
			 LEFT JOIN dim_positions p ON p.position_id = e.position_id
			 LEFT JOIN dim_grades g ON g.grade_id = e.grade_id`)
		if err != nil {
			return fmt.Errorf("failed to query employee attributes: %w", err)
		}
		defer rows.Close()

		clear(attrs)
		for rows.Next() {
			var emp types.Employee
			if err := rows.Scan(&emp.ID, &emp.FullName, &emp.Directorate, &emp.Position, &emp.Grade); err != nil {
				return fmt.Errorf("failed to scan employee attributes: %w", err)
			}
			attrs[emp.ID] = emp
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return attrs, nil
}
