// Package types provides type definitions for structured data used throughout the talent-match system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Direction describes which side of the baseline is desirable for a numeric trait.
type Direction string

const (
	// DirectionHigherBetter means values above the baseline are at least as good as the baseline.
	DirectionHigherBetter Direction = "higher_is_better"
	// DirectionLowerBetter means values below the baseline are at least as good as the baseline.
	DirectionLowerBetter Direction = "lower_is_better"
)

// ValueKind describes how a trait's values are compared.
type ValueKind string

const (
	// KindNumeric traits are compared as ratios against a median baseline.
	KindNumeric ValueKind = "numeric"
	// KindCategorical traits are compared for equality against a modal baseline.
	KindCategorical ValueKind = "categorical"
)

// Employee holds the descriptive attributes resolved from the dimension tables.
// Attributes may be empty when the employee has no dimension row; the engine
// never drops an employee for missing attributes.
type Employee struct {
	ID          string `json:"employee_id"`
	FullName    string `json:"fullname"`
	Directorate string `json:"directorate"`
	Position    string `json:"position"`
	Grade       string `json:"grade"`
}

// TraitRecord is one employee's raw trait row, keyed by source column name.
// A column absent from both maps means the employee has no observation for
// the traits mapped to it.
type TraitRecord struct {
	EmployeeID string
	Numeric    map[string]float64
	Category   map[string]string
}

// PerformanceRecord is one annual performance rating, consumed only by the
// predicate-based cohort strategy.
type PerformanceRecord struct {
	EmployeeID string
	Year       int
	Rating     int
}

// Observation is a single (employee, trait, value) fact. Exactly one of
// Numeric and Category is set.
type Observation struct {
	EmployeeID string
	TraitName  string
	Numeric    *float64
	Category   *string
}

// Baseline is the reference value for one trait, derived from the benchmark
// cohort. Both fields are nil when the cohort has no observations for the
// trait; it lives only for the duration of one scoring run.
type Baseline struct {
	TraitName string
	Numeric   *float64
	Category  *string
}

// MatchRecord is the scored comparison of one employee observation against
// the trait's baseline. Immutable once computed.
type MatchRecord struct {
	EmployeeID       string
	TraitName        string
	GroupName        string
	UserNumeric      *float64
	UserCategory     *string
	BaselineNumeric  *float64
	BaselineCategory *string
	MatchRate        float64
}

// GroupMatch is the weighted average of an employee's trait match rates
// within one trait group.
type GroupMatch struct {
	EmployeeID string
	GroupName  string
	MatchRate  float64
}

// FinalMatch is the overall weighted score for one employee, in [0, 100].
type FinalMatch struct {
	EmployeeID string
	MatchRate  float64
}

// RoleInput carries the free-text vacancy metadata. It is passed through
// unchanged into the output header and never consulted by the scoring math.
type RoleInput struct {
	RoleName    string `json:"role_name" validate:"required,min=1"`
	JobLevel    string `json:"job_level" validate:"required,min=1"`
	RolePurpose string `json:"role_purpose" validate:"required,min=1"`
}

// Validate validates the RoleInput using the validator.
func (r *RoleInput) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ResultRow is one output row of the assembled result: one (employee, trait
// group, trait) triple together with the run header and the three score
// levels.
type ResultRow struct {
	JobVacancyID   string  `json:"job_vacancy_id"`
	RoleName       string  `json:"role_name"`
	JobLevel       string  `json:"job_level"`
	RolePurpose    string  `json:"role_purpose"`
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"fullname"`
	Directorate    string  `json:"directorate"`
	Position       string  `json:"position"`
	Grade          string  `json:"grade"`
	TGVName        string  `json:"tgv_name"`
	TVName         string  `json:"tv_name"`
	BaselineScore  string  `json:"baseline_score"`
	UserScore      string  `json:"user_score"`
	TVMatchRate    float64 `json:"tv_match_rate"`
	TGVMatchRate   float64 `json:"tgv_match_rate"`
	FinalMatchRate float64 `json:"final_match_rate"`
}
