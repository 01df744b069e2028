// Package dataset assembles the body records written to the CSV: it selects
// bodies per scenario, merges the Horizons and SBDB results, approximates
// missing masses and counts rows per orbit class.
package dataset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/jpl"
)

// Scenario selects which bodies end up in the dataset
type Scenario string

const (
	// PlanetsAndMoons includes planets, dwarf planets and moons only
	PlanetsAndMoons Scenario = "planets_and_moons"
	// Scenario1 adds asteroids with known diameter and albedo, where
	// main-belt asteroids must be at least 10 km across
	Scenario1 Scenario = "scenario1"
	// Scenario2 adds asteroids until the body count, Sun included, reaches the limit
	Scenario2 Scenario = "scenario2"
	// Full adds every asteroid in the small-body database
	Full Scenario = "full"
)

// MinMainBeltDiameter is the smallest diameter (km) of a main-belt asteroid in Scenario1
const MinMainBeltDiameter = 10.0

// scenario1Constraint is the SBDB sb-cdata filter for Scenario1
const scenario1Constraint = `{"AND":[{"AND":["diameter|DF","albedo|DF"]},{"OR":["class|NE|MBA","diameter|GE|10"]}]}`

// Scenarios returns every scenario in the order shown to users
func Scenarios() []Scenario {
	return []Scenario{PlanetsAndMoons, Scenario1, Scenario2, Full}
}

// ScenarioNames returns the scenario names, e.g. for flag help
func ScenarioNames() []string {
	names := make([]string, 0, 4)
	for _, s := range Scenarios() {
		names = append(names, string(s))
	}
	return names
}

// ParseScenario converts a name into a Scenario
func ParseScenario(name string) (Scenario, error) {
	s := Scenario(strings.TrimSpace(name))
	if !slices.Contains(Scenarios(), s) {
		return "", errors.Newf("invalid scenario %q: must be one of %s", name, strings.Join(ScenarioNames(), ", ")).
			Category(errors.CategoryValidation).
			Component("dataset").
			Context("scenario", name).
			Build()
	}
	return s, nil
}

// IncludesAsteroids reports whether the scenario queries the small-body database
func (s Scenario) IncludesAsteroids() bool {
	return s != PlanetsAndMoons
}

// UsesLimit reports whether the scenario takes a body-count limit
func (s Scenario) UsesLimit() bool {
	return s == Scenario2
}

// MinimumLimit is the smallest valid Scenario2 limit: every major body plus the Sun
func MinimumLimit() int {
	return catalog.MajorBodyCount() + 1
}

// ValidateLimit checks limit against the scenario. The limit counts the Sun,
// so it is required and at least MinimumLimit for Scenario2 and must be
// unset (zero) otherwise.
func ValidateLimit(s Scenario, limit int) error {
	if !s.UsesLimit() {
		if limit != 0 {
			return limitError(fmt.Sprintf("limit may only be used with scenario %s", Scenario2), s, limit)
		}
		return nil
	}

	if limit == 0 {
		return limitError(fmt.Sprintf("limit must be provided for scenario %s", Scenario2), s, limit)
	}
	if minimum := MinimumLimit(); limit < minimum {
		return limitError(fmt.Sprintf(
			"limit (%d) must be at least the number of planets and moons + 1 (accounting for the Sun) which is %d",
			limit, minimum), s, limit)
	}
	return nil
}

func limitError(msg string, s Scenario, limit int) error {
	return errors.Newf("%s", msg).
		Category(errors.CategoryValidation).
		Component("dataset").
		Context("scenario", string(s)).
		Context("limit", limit).
		Build()
}

// asteroidQuery returns the SBDB query for the scenario. extra widens a
// Scenario2 request to make up for rows dropped after the query. The second
// result is false when no query is needed.
func (s Scenario) asteroidQuery(limit, extra int) (jpl.AsteroidQuery, bool) {
	switch s {
	case Scenario1:
		return jpl.AsteroidQuery{Constraint: scenario1Constraint}, true
	case Scenario2:
		wanted := limit - MinimumLimit()
		if wanted <= 0 {
			return jpl.AsteroidQuery{}, false
		}
		return jpl.AsteroidQuery{Limit: wanted + extra}, true
	case Full:
		return jpl.AsteroidQuery{}, true
	default:
		return jpl.AsteroidQuery{}, false
	}
}
