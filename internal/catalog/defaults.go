package catalog

import "github.com/kartika/talent-match-intel/internal/types"

// Default returns the built-in trait catalog covering the psychometric and
// competency columns of the profiles_psych source table. Every weight is 1.0
// until a real weighting source exists.
func Default() *Catalog {
	return &Catalog{
		Traits: []TraitDefinition{
			{Name: "IQ", Group: "Cognitive Ability", SourceColumn: "iq", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "GTQ", Group: "Cognitive Ability", SourceColumn: "gtq", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "Learning Agility", Group: "Cognitive Ability", SourceColumn: "learning_agility", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "EQ", Group: "Personality", SourceColumn: "eq_total", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "DISC Profile", Group: "Personality", SourceColumn: "disc", Direction: types.DirectionHigherBetter, Kind: types.KindCategorical, Weight: 1.0},
			{Name: "MBTI Type", Group: "Personality", SourceColumn: "mbti", Direction: types.DirectionHigherBetter, Kind: types.KindCategorical, Weight: 1.0},
			{Name: "Pauli Accuracy", Group: "Work Behavior", SourceColumn: "pauli_accuracy", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "Pauli Error Rate", Group: "Work Behavior", SourceColumn: "pauli_error_rate", Direction: types.DirectionLowerBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "Leadership", Group: "Competency", SourceColumn: "competency_leadership", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "Analytical Thinking", Group: "Competency", SourceColumn: "competency_analytical", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
			{Name: "Communication", Group: "Competency", SourceColumn: "competency_communication", Direction: types.DirectionHigherBetter, Kind: types.KindNumeric, Weight: 1.0},
		},
	}
}
