package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartika/talent-match-intel/internal/cohort"
	"github.com/kartika/talent-match-intel/internal/types"
)

func mustCohort(t *testing.T, ids ...string) *cohort.Cohort {
	t.Helper()
	bench, err := cohort.FromIDs(ids)
	require.NoError(t, err)
	return bench
}

func TestComputeBaselines_InterpolatedMedianEvenCount(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E1", TraitName: "IQ", Numeric: floatPtr(10)},
		{EmployeeID: "E2", TraitName: "IQ", Numeric: floatPtr(20)},
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1", "E2"), testCatalog())

	iq := baselines["IQ"]
	require.NotNil(t, iq.Numeric)
	assert.Equal(t, 15.0, *iq.Numeric, "even count takes the mean of the two central order statistics")
	assert.Nil(t, iq.Category)
}

func TestComputeBaselines_MedianOddCount(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E1", TraitName: "IQ", Numeric: floatPtr(130)},
		{EmployeeID: "E2", TraitName: "IQ", Numeric: floatPtr(90)},
		{EmployeeID: "E3", TraitName: "IQ", Numeric: floatPtr(100)},
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1", "E2", "E3"), testCatalog())

	require.NotNil(t, baselines["IQ"].Numeric)
	assert.Equal(t, 100.0, *baselines["IQ"].Numeric)
}

func TestComputeBaselines_ExcludesNonCohortObservations(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E1", TraitName: "IQ", Numeric: floatPtr(100)},
		{EmployeeID: "E9", TraitName: "IQ", Numeric: floatPtr(999)}, // not in cohort
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1"), testCatalog())

	require.NotNil(t, baselines["IQ"].Numeric)
	assert.Equal(t, 100.0, *baselines["IQ"].Numeric)
}

func TestComputeBaselines_ModeWithAlphabeticalTieBreak(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E1", TraitName: "DISC Profile", Category: strPtr("Steadiness")},
		{EmployeeID: "E2", TraitName: "DISC Profile", Category: strPtr("Dominance")},
		{EmployeeID: "E3", TraitName: "DISC Profile", Category: strPtr("Steadiness")},
		{EmployeeID: "E4", TraitName: "DISC Profile", Category: strPtr("Dominance")},
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1", "E2", "E3", "E4"), testCatalog())

	disc := baselines["DISC Profile"]
	require.NotNil(t, disc.Category)
	assert.Equal(t, "Dominance", *disc.Category, "ties break to the first category in ascending order")
}

func TestComputeBaselines_ModeMajorityWins(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E1", TraitName: "DISC Profile", Category: strPtr("Steadiness")},
		{EmployeeID: "E2", TraitName: "DISC Profile", Category: strPtr("Steadiness")},
		{EmployeeID: "E3", TraitName: "DISC Profile", Category: strPtr("Analyst")},
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1", "E2", "E3"), testCatalog())

	require.NotNil(t, baselines["DISC Profile"].Category)
	assert.Equal(t, "Steadiness", *baselines["DISC Profile"].Category)
}

func TestComputeBaselines_TraitWithoutCohortObservationsIsAbsent(t *testing.T) {
	observations := []types.Observation{
		{EmployeeID: "E9", TraitName: "IQ", Numeric: floatPtr(100)}, // not in cohort
	}

	baselines := ComputeBaselines(observations, mustCohort(t, "E1"), testCatalog())

	// Every catalog trait still gets a baseline record, with both fields absent.
	for _, name := range []string{"IQ", "GTQ", "Pauli Error Rate", "DISC Profile"} {
		baseline, ok := baselines[name]
		require.True(t, ok, "trait %s must have a baseline record", name)
		assert.Nil(t, baseline.Numeric)
		assert.Nil(t, baseline.Category)
	}
}

func TestMedian_Interpolation(t *testing.T) {
	assert.Equal(t, 15.0, median([]float64{20, 10}))
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 7.0, median([]float64{7}))
}
