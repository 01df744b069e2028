package dataset

import (
	"math"
	"strconv"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/jpl"
)

// Header is the fixed CSV header of the dataset
var Header = []string{"e", "a", "i", "om", "w", "ma", "epoch", "H", "albedo", "diameter", "class", "name", "mass", "central_body"}

// Record is one row of the dataset. Angles are in the unit the builder was
// configured with; unknown H, albedo and diameter are zero.
type Record struct {
	Eccentricity  float64
	SemiMajorAxis float64 // AU
	Inclination   float64
	AscendingNode float64
	Periapsis     float64
	MeanAnomaly   float64
	Epoch         float64 // Julian Date
	H             float64
	Albedo        float64
	Diameter      float64 // km
	Class         catalog.OrbitClass
	Name          string
	Mass          jpl.OptionalFloat // kg, empty in the CSV when unknown
	CentralBody   string            // empty for heliocentric asteroids
}

// Fields returns the record as CSV cells in Header order
func (r Record) Fields() []string {
	mass := ""
	if r.Mass.Valid {
		mass = formatFloat(r.Mass.Value)
	}

	return []string{
		formatFloat(r.Eccentricity),
		formatFloat(r.SemiMajorAxis),
		formatFloat(r.Inclination),
		formatFloat(r.AscendingNode),
		formatFloat(r.Periapsis),
		formatFloat(r.MeanAnomaly),
		formatFloat(r.Epoch),
		formatFloat(r.H),
		formatFloat(r.Albedo),
		formatFloat(r.Diameter),
		string(r.Class),
		r.Name,
		mass,
		r.CentralBody,
	}
}

// formatFloat writes the shortest representation that round-trips, in
// positional notation unless the exponent is below -4 or at least 16.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	if exp := math.Floor(math.Log10(math.Abs(v))); exp < -4 || exp >= 16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AngleUnit is the unit of the angular elements in the dataset
type AngleUnit string

const (
	Radians AngleUnit = "rad"
	Degrees AngleUnit = "deg"
)

// convert converts an angle from degrees
func (u AngleUnit) convert(deg float64) float64 {
	if u == Degrees {
		return deg
	}
	return deg * math.Pi / 180
}

// newRecord builds a record from elements reported in degrees
func newRecord(el jpl.Elements, unit AngleUnit) Record {
	return Record{
		Eccentricity:  el.Eccentricity,
		SemiMajorAxis: el.SemiMajorAxis,
		Inclination:   unit.convert(el.Inclination),
		AscendingNode: unit.convert(el.AscendingNode),
		Periapsis:     unit.convert(el.Periapsis),
		MeanAnomaly:   unit.convert(el.MeanAnomaly),
		Epoch:         el.Epoch,
	}
}

// majorBodyRecord builds the row of a catalog body
func majorBodyRecord(body catalog.Body, el jpl.Elements, unit AngleUnit) Record {
	r := newRecord(el, unit)
	r.Class = body.Class
	r.Name = body.Name
	r.Mass = jpl.Some(body.Mass)
	r.CentralBody = body.CentralBody
	return r
}

// asteroidRecord builds the row of an SBDB asteroid
func asteroidRecord(sb jpl.SmallBody, unit AngleUnit, approximateMass bool) Record {
	r := newRecord(sb.Elements, unit)
	r.H = sb.H.Or(0)
	r.Albedo = sb.Albedo.Or(0)
	r.Diameter = sb.Diameter.Or(0)
	r.Class = catalog.OrbitClass(sb.Class)
	r.Name = sb.FullName
	if approximateMass {
		if m, ok := ApproximateMass(sb.H, sb.Albedo, sb.Diameter); ok {
			r.Mass = jpl.Some(m)
		}
	}
	return r
}
