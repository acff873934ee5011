package db

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traitFields(names ...string) []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(names))
	for i, name := range names {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func TestMapTraitRow_SplitsByValueKind(t *testing.T) {
	fields := traitFields("employee_id", "iq", "eq_total", "disc", "mbti")
	values := []any{"EMP-001", int32(110), float64(87.5), "Dominance", "INTJ"}

	rec, err := mapTraitRow(fields, values)
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", rec.EmployeeID)
	assert.Equal(t, 110.0, rec.Numeric["iq"])
	assert.Equal(t, 87.5, rec.Numeric["eq_total"])
	assert.Equal(t, "Dominance", rec.Category["disc"])
	assert.Equal(t, "INTJ", rec.Category["mbti"])
}

func TestMapTraitRow_NullCellsOmitted(t *testing.T) {
	fields := traitFields("employee_id", "iq", "disc")
	values := []any{"EMP-001", nil, nil}

	rec, err := mapTraitRow(fields, values)
	require.NoError(t, err)

	assert.Equal(t, "EMP-001", rec.EmployeeID)
	assert.Empty(t, rec.Numeric)
	assert.Empty(t, rec.Category)
}

func TestMapTraitRow_IntegerWidths(t *testing.T) {
	fields := traitFields("employee_id", "a", "b", "c", "d")
	values := []any{"EMP-001", int64(1), int32(2), int16(3), float32(4.5)}

	rec, err := mapTraitRow(fields, values)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rec.Numeric["a"])
	assert.Equal(t, 2.0, rec.Numeric["b"])
	assert.Equal(t, 3.0, rec.Numeric["c"])
	assert.Equal(t, 4.5, rec.Numeric["d"])
}

func TestMapTraitRow_NumericColumn(t *testing.T) {
	fields := traitFields("employee_id", "pauli_accuracy")
	values := []any{"EMP-001", pgtype.Numeric{Int: big.NewInt(925), Exp: -1, Valid: true}}

	rec, err := mapTraitRow(fields, values)
	require.NoError(t, err)

	assert.InDelta(t, 92.5, rec.Numeric["pauli_accuracy"], 1e-9)
}

func TestMapTraitRow_BadEmployeeIDType(t *testing.T) {
	fields := traitFields("employee_id")
	values := []any{int64(42)}

	_, err := mapTraitRow(fields, values)
	assert.Error(t, err)
}

func TestMapTraitRow_IgnoresBookkeepingTypes(t *testing.T) {
	fields := traitFields("employee_id", "created_at", "iq")
	values := []any{"EMP-001", pgtype.Timestamptz{Valid: true}, int32(110)}

	rec, err := mapTraitRow(fields, values)
	require.NoError(t, err)

	assert.Equal(t, 110.0, rec.Numeric["iq"])
	assert.NotContains(t, rec.Numeric, "created_at")
	assert.NotContains(t, rec.Category, "created_at")
}

func TestNumericToFloat(t *testing.T) {
	f, err := numericToFloat(pgtype.Numeric{Int: big.NewInt(15), Valid: true})
	require.NoError(t, err)
	assert.Equal(t, 15.0, f)
}

func TestNumericToFloat_Invalid(t *testing.T) {
	_, err := numericToFloat(pgtype.Numeric{})
	assert.Error(t, err)
}

func TestNumericToFloat_NaN(t *testing.T) {
	_, err := numericToFloat(pgtype.Numeric{NaN: true, Valid: true})
	assert.Error(t, err)
}
