// Package catalog defines the static trait metadata the scoring engine is
// configured with: which trait variables exist, which group each belongs to,
// how values are compared, and how much each contributes to the rollup.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kartika/talent-match-intel/internal/types"
)

// TraitDefinition describes one trait variable (TV).
type TraitDefinition struct {
	Name         string          `json:"name" validate:"required,min=1"`
	Group        string          `json:"group" validate:"required,min=1"`
	SourceColumn string          `json:"source_column" validate:"required,min=1"`
	Direction    types.Direction `json:"direction" validate:"required,oneof=higher_is_better lower_is_better"`
	Kind         types.ValueKind `json:"kind" validate:"required,oneof=numeric categorical"`
	Weight       float64         `json:"weight" validate:"gt=0"`
}

// Catalog holds the full trait configuration for one scoring run. Group
// weights default to 1.0 for groups absent from GroupWeights.
type Catalog struct {
	Traits       []TraitDefinition  `json:"traits" validate:"required,min=1,dive"`
	GroupWeights map[string]float64 `json:"group_weights,omitempty"`

	indexOnce sync.Once
	byName    map[string]*TraitDefinition
}

// Validate checks the catalog's structural constraints: per-trait field
// validity, unique trait names, and positive group weights.
func (c *Catalog) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("catalog validation failed: %w", err)
	}

	seen := make(map[string]bool, len(c.Traits))
	for _, tv := range c.Traits {
		if seen[tv.Name] {
			return fmt.Errorf("catalog validation failed: duplicate trait %q", tv.Name)
		}
		seen[tv.Name] = true
	}

	for group, w := range c.GroupWeights {
		if w <= 0 {
			return fmt.Errorf("catalog validation failed: group %q has non-positive weight %v", group, w)
		}
	}

	return nil
}

// Lookup returns the definition for a trait name, or nil if unknown. Safe
// for concurrent use: the scoring stage calls it from parallel shards, so
// the index is built exactly once.
func (c *Catalog) Lookup(name string) *TraitDefinition {
	c.indexOnce.Do(func() {
		c.byName = make(map[string]*TraitDefinition, len(c.Traits))
		for i := range c.Traits {
			c.byName[c.Traits[i].Name] = &c.Traits[i]
		}
	})
	return c.byName[name]
}

// GroupWeight returns the rollup weight for a trait group, defaulting to 1.0
// when no explicit weight is configured.
func (c *Catalog) GroupWeight(group string) float64 {
	if w, ok := c.GroupWeights[group]; ok {
		return w
	}
	return 1.0
}

// Groups returns the distinct trait group names in ascending order.
func (c *Catalog) Groups() []string {
	set := make(map[string]bool)
	for _, tv := range c.Traits {
		set[tv.Group] = true
	}
	groups := make([]string, 0, len(set))
	for g := range set {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// UnmappedTraits compares the catalog against the source schema and returns
// the names of traits whose source column is absent, in ascending order.
// A non-empty result is a configuration mismatch, not a runtime fault: those
// traits simply produce no observations anywhere.
func (c *Catalog) UnmappedTraits(sourceColumns []string) []string {
	present := make(map[string]bool, len(sourceColumns))
	for _, col := range sourceColumns {
		present[col] = true
	}

	var missing []string
	for _, tv := range c.Traits {
		if !present[tv.SourceColumn] {
			missing = append(missing, tv.Name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Load reads a catalog from a JSON file, validating it against the embedded
// JSON Schema before decoding and against struct constraints after.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}
