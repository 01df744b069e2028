// Package catalog holds the static knowledge the dataset is built from: the
// major bodies queried from Horizons and the orbit classes rows are grouped by.
package catalog

import "slices"

// OrbitClass is a three-letter orbit class code as used by the JPL
// Small-Body Database, extended with synthetic classes for major bodies.
type OrbitClass string

// Synthetic classes for bodies the small-body database does not cover
const (
	ClassPlanet      OrbitClass = "PLA"
	ClassDwarfPlanet OrbitClass = "DWA"
	ClassMoon        OrbitClass = "SAT"
	// ClassStar marks the central star. It is reserved for the consumer of
	// the dataset and never written as a row.
	ClassStar OrbitClass = "STA"
)

// Official SBDB asteroid orbit classes
const (
	ClassAtira              OrbitClass = "IEO"
	ClassAten               OrbitClass = "ATE"
	ClassApollo             OrbitClass = "APO"
	ClassAmor               OrbitClass = "AMO"
	ClassMarsCrosser        OrbitClass = "MCA"
	ClassInnerMainBelt      OrbitClass = "IMB"
	ClassMainBelt           OrbitClass = "MBA"
	ClassOuterMainBelt      OrbitClass = "OMB"
	ClassJupiterTrojan      OrbitClass = "TJN"
	ClassAsteroid           OrbitClass = "AST"
	ClassCentaur            OrbitClass = "CEN"
	ClassTransNeptunian     OrbitClass = "TNO"
	ClassParabolicAsteroid  OrbitClass = "PAA"
	ClassHyperbolicAsteroid OrbitClass = "HYA"
)

type classInfo struct {
	class OrbitClass
	label string
}

// orbitClasses is in statistics table order
var orbitClasses = []classInfo{
	{ClassPlanet, "Planets"},
	{ClassDwarfPlanet, "Dwarf Planets"},
	{ClassMoon, "Moons"},
	{ClassAtira, "Atira"},
	{ClassAten, "Aten"},
	{ClassApollo, "Apollo"},
	{ClassAmor, "Amor"},
	{ClassMarsCrosser, "Mars-crossing Asteroid"},
	{ClassInnerMainBelt, "Inner Main-belt Asteroid"},
	{ClassMainBelt, "Main-belt Asteroid"},
	{ClassOuterMainBelt, "Outer Main-belt Asteroid"},
	{ClassJupiterTrojan, "Jupiter Trojan"},
	{ClassAsteroid, "Asteroid"},
	{ClassCentaur, "Centaur"},
	{ClassTransNeptunian, "TransNeptunian Object"},
	{ClassParabolicAsteroid, `Parabolic "Asteroid"`},
	{ClassHyperbolicAsteroid, `Hyperbolic "Asteroid"`},
}

// OrbitClasses returns every class that may appear in a dataset, in
// statistics table order. ClassStar is not included.
func OrbitClasses() []OrbitClass {
	classes := make([]OrbitClass, len(orbitClasses))
	for i, c := range orbitClasses {
		classes[i] = c.class
	}
	return classes
}

// Label returns the human-readable name of the class, or the code itself if
// the class is unknown.
func (c OrbitClass) Label() string {
	if c == ClassStar {
		return "Star"
	}
	for _, info := range orbitClasses {
		if info.class == c {
			return info.label
		}
	}
	return string(c)
}

// Known reports whether c is a recognised orbit class.
func (c OrbitClass) Known() bool {
	return c == ClassStar || slices.ContainsFunc(orbitClasses, func(info classInfo) bool { return info.class == c })
}

// IsMajorBody reports whether c is one of the synthetic major-body classes.
func (c OrbitClass) IsMajorBody() bool {
	return c == ClassPlanet || c == ClassDwarfPlanet || c == ClassMoon || c == ClassStar
}

// IsAsteroid reports whether c denotes a small body from the SBDB.
func (c OrbitClass) IsAsteroid() bool {
	return c != "" && !c.IsMajorBody()
}
