package scoring

import (
	"github.com/kartika/talent-match-intel/internal/catalog"
	"github.com/kartika/talent-match-intel/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// testCatalog is a small catalog exercising both kinds, both directions and
// a non-uniform weight.
func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Traits: []catalog.TraitDefinition{
			{Name: "IQ", Group: "Cognitive Ability", SourceColumn: "iq", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "GTQ", Group: "Cognitive Ability", SourceColumn: "gtq", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 3.0},
			{Name: "Pauli Error Rate", Group: "Work Behavior", SourceColumn: "pauli_error_rate", Direction: types.DirectionLowerBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "DISC Profile", Group: "Personality", SourceColumn: "disc", Direction: types.DirectionHigherBetter, Kind: types.KindCategorical, Weight: 1.0},
		},
		GroupWeights: map[string]float64{"Cognitive Ability": 2.0},
	}
}
