package dataset

import (
	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/jpl"
)

// filterResult is the outcome of selectAsteroids
type filterResult struct {
	kept          []jpl.SmallBody
	duplicates    int                        // dwarf planets already emitted from Horizons
	rejected      int                        // failed the scenario constraint
	unknownClass  map[catalog.OrbitClass]int // kept, but not a known SBDB class
	limitShortage int                        // Scenario2 rows missing to reach the limit
}

// satisfiesScenario1 reports whether an asteroid meets the Scenario1 constraint
func satisfiesScenario1(sb jpl.SmallBody) bool {
	if !sb.Diameter.Valid || !sb.Albedo.Valid {
		return false
	}
	if catalog.OrbitClass(sb.Class) == catalog.ClassMainBelt {
		return sb.Diameter.Value >= MinMainBeltDiameter
	}
	return true
}

// selectAsteroids drops the SBDB entries of dwarf planets, applies the
// scenario constraint and, for Scenario2, keeps exactly wanted rows.
// Response order is preserved.
func selectAsteroids(s Scenario, bodies []jpl.SmallBody, wanted int) filterResult {
	duplicates := catalog.DuplicateDesignations()
	res := filterResult{kept: make([]jpl.SmallBody, 0, len(bodies))}

	for _, sb := range bodies {
		if _, dup := duplicates[sb.Designation]; dup {
			res.duplicates++
			continue
		}
		if s == Scenario1 && !satisfiesScenario1(sb) {
			res.rejected++
			continue
		}
		if class := catalog.OrbitClass(sb.Class); !class.Known() || !class.IsAsteroid() {
			if res.unknownClass == nil {
				res.unknownClass = make(map[catalog.OrbitClass]int)
			}
			res.unknownClass[class]++
		}
		res.kept = append(res.kept, sb)
	}

	if s == Scenario2 {
		if len(res.kept) > wanted {
			res.kept = res.kept[:wanted]
		}
		res.limitShortage = wanted - len(res.kept)
	}

	return res
}
