package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartika/talent-match-intel/internal/types"
)

func TestRollupGroups_WeightedAverage(t *testing.T) {
	// IQ weight 1.0, GTQ weight 3.0: (100*1 + 60*3) / 4 = 70.
	records := []types.MatchRecord{
		{EmployeeID: "E1", TraitName: "IQ", GroupName: "Cognitive Ability", MatchRate: 100},
		{EmployeeID: "E1", TraitName: "GTQ", GroupName: "Cognitive Ability", MatchRate: 60},
	}

	groups := RollupGroups(records, testCatalog())

	require.Len(t, groups, 1)
	assert.Equal(t, "E1", groups[0].EmployeeID)
	assert.Equal(t, "Cognitive Ability", groups[0].GroupName)
	assert.Equal(t, 70.0, groups[0].MatchRate)
}

func TestRollupGroups_RoundsToTwoDecimals(t *testing.T) {
	records := []types.MatchRecord{
		{EmployeeID: "E1", TraitName: "IQ", GroupName: "Cognitive Ability", MatchRate: 33.33},
		{EmployeeID: "E1", TraitName: "GTQ", GroupName: "Cognitive Ability", MatchRate: 50},
	}

	groups := RollupGroups(records, testCatalog())

	require.Len(t, groups, 1)
	// (33.33*1 + 50*3)/4 = 45.8325 -> 45.83
	assert.Equal(t, 45.83, groups[0].MatchRate)
}

func TestRollupGroups_SeparatesEmployeesAndGroups(t *testing.T) {
	records := []types.MatchRecord{
		{EmployeeID: "E1", TraitName: "IQ", GroupName: "Cognitive Ability", MatchRate: 80},
		{EmployeeID: "E1", TraitName: "DISC Profile", GroupName: "Personality", MatchRate: 100},
		{EmployeeID: "E2", TraitName: "IQ", GroupName: "Cognitive Ability", MatchRate: 40},
	}

	groups := RollupGroups(records, testCatalog())

	require.Len(t, groups, 3)
	// Deterministic order: employee then group name ascending.
	assert.Equal(t, "E1", groups[0].EmployeeID)
	assert.Equal(t, "Cognitive Ability", groups[0].GroupName)
	assert.Equal(t, "E1", groups[1].EmployeeID)
	assert.Equal(t, "Personality", groups[1].GroupName)
	assert.Equal(t, "E2", groups[2].EmployeeID)
}

func TestRollupGroups_SkipsRecordsOutsideCatalog(t *testing.T) {
	records := []types.MatchRecord{
		{EmployeeID: "E1", TraitName: "Shoe Size", GroupName: "Extras", MatchRate: 100},
	}

	assert.Empty(t, RollupGroups(records, testCatalog()))
}

func TestRollupFinal_WeightedByGroupWeight(t *testing.T) {
	// Cognitive Ability weight 2.0, Personality default 1.0:
	// (90*2 + 60*1)/3 = 80.
	groups := []types.GroupMatch{
		{EmployeeID: "E1", GroupName: "Cognitive Ability", MatchRate: 90},
		{EmployeeID: "E1", GroupName: "Personality", MatchRate: 60},
	}

	finals := RollupFinal(groups, testCatalog())

	require.Len(t, finals, 1)
	assert.Equal(t, "E1", finals[0].EmployeeID)
	assert.Equal(t, 80.0, finals[0].MatchRate)
}

func TestRollupFinal_MissingGroupIsAbsentNotZero(t *testing.T) {
	// E1 has only one group; the others contribute nothing rather than
	// dragging the average down as zeros.
	groups := []types.GroupMatch{
		{EmployeeID: "E1", GroupName: "Personality", MatchRate: 75},
	}

	finals := RollupFinal(groups, testCatalog())

	require.Len(t, finals, 1)
	assert.Equal(t, 75.0, finals[0].MatchRate)
}

func TestRollupFinal_ClampedAt100(t *testing.T) {
	groups := []types.GroupMatch{
		{EmployeeID: "E1", GroupName: "Personality", MatchRate: 100.25},
	}

	finals := RollupFinal(groups, testCatalog())

	require.Len(t, finals, 1)
	assert.Equal(t, 100.0, finals[0].MatchRate)
}

func TestRollupFinal_AlwaysInRange(t *testing.T) {
	groups := []types.GroupMatch{
		{EmployeeID: "E1", GroupName: "Cognitive Ability", MatchRate: 0},
		{EmployeeID: "E1", GroupName: "Personality", MatchRate: 100},
		{EmployeeID: "E2", GroupName: "Cognitive Ability", MatchRate: 0},
	}

	finals := RollupFinal(groups, testCatalog())

	for _, fm := range finals {
		assert.GreaterOrEqual(t, fm.MatchRate, 0.0)
		assert.LessOrEqual(t, fm.MatchRate, 100.0)
	}
}

func TestRollupFinal_EmptyInput(t *testing.T) {
	assert.Empty(t, RollupFinal(nil, testCatalog()))
}
