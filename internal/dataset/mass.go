package dataset

import (
	"math"

	"github.com/orbitdata/query-data/internal/jpl"
)

// Constants of the size and density model
const (
	// DefaultAlbedo is assumed when estimating a diameter without a known albedo
	DefaultAlbedo = 0.14

	// diameterConstant relates absolute magnitude and albedo to diameter (km)
	diameterConstant = 1329.0

	darkAlbedo     = 0.1    // below this a body is taken as carbonaceous
	densityDark    = 1380.0 // kg/m³, C-type
	densityBright  = 2710.0 // kg/m³, S-type
	densityUnknown = 2000.0 // kg/m³
)

// EstimateDiameter returns the diameter in km of a body with absolute
// magnitude h and geometric albedo p.
func EstimateDiameter(h, p float64) float64 {
	return diameterConstant / math.Sqrt(p) * math.Pow(10, -h/5)
}

// density returns the bulk density assumed for a body with the given albedo
func density(albedo jpl.OptionalFloat) float64 {
	switch {
	case !albedo.Valid || albedo.Value <= 0:
		return densityUnknown
	case albedo.Value < darkAlbedo:
		return densityDark
	default:
		return densityBright
	}
}

// ApproximateMass estimates a mass in kg from the diameter, or from the
// absolute magnitude when no diameter is known, treating the body as a
// homogeneous sphere. It returns false when neither is known.
func ApproximateMass(h, albedo, diameter jpl.OptionalFloat) (float64, bool) {
	var d float64
	switch {
	case diameter.Valid && diameter.Value > 0:
		d = diameter.Value
	case h.Valid:
		p := DefaultAlbedo
		if albedo.Valid && albedo.Value > 0 {
			p = albedo.Value
		}
		d = EstimateDiameter(h.Value, p)
	default:
		return 0, false
	}

	radius := d * 1000 / 2 // m
	return density(albedo) * 4 / 3 * math.Pi * radius * radius * radius, true
}
