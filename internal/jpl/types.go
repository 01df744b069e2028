// Package jpl provides a client for NASA JPL's Solar System Dynamics APIs:
// Horizons for osculating elements of major bodies and the Small-Body
// Database query API for asteroids.
package jpl

import (
	"strconv"
	"time"
)

// Default service endpoints
const (
	DefaultHorizonsURL = "https://ssd.jpl.nasa.gov/api/horizons.api"
	DefaultSBDBURL     = "https://ssd-api.jpl.nasa.gov/sbdb_query.api"
)

// Config holds configuration for the JPL client
type Config struct {
	HorizonsURL string        // Horizons API endpoint
	SBDBURL     string        // SBDB query API endpoint
	RateLimit   float64       // requests per second
	MaxRetries  int           // retries after the first attempt for transient failures
	RetryDelay  time.Duration // base delay, grows linearly per attempt
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		HorizonsURL: DefaultHorizonsURL,
		SBDBURL:     DefaultSBDBURL,
		RateLimit:   5,
		MaxRetries:  3,
		RetryDelay:  500 * time.Millisecond,
	}
}

// Elements are heliocentric or planetocentric osculating Keplerian elements.
// Angles are in degrees, distances in AU.
type Elements struct {
	Eccentricity  float64
	SemiMajorAxis float64
	Inclination   float64
	AscendingNode float64 // longitude of the ascending node
	Periapsis     float64 // argument of periapsis
	MeanAnomaly   float64
	Epoch         float64 // Julian Date (TDB)
}

// ElementsQuery selects one Horizons ephemeris
type ElementsQuery struct {
	Command string  // Horizons COMMAND, e.g. "499" or "1;"
	Center  string  // Horizons CENTER, e.g. "500@10"
	Epoch   float64 // Julian Date
}

// OptionalFloat is a numeric field the SBDB may report as null
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Some returns a valid OptionalFloat
func Some(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// Or returns the value, or def if the field was null
func (o OptionalFloat) Or(def float64) float64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

func (o OptionalFloat) String() string {
	if !o.Valid {
		return "null"
	}
	return strconv.FormatFloat(o.Value, 'g', -1, 64)
}

// SmallBody is one asteroid row returned by the SBDB query API
type SmallBody struct {
	Elements
	H           OptionalFloat // absolute magnitude
	Albedo      OptionalFloat // geometric albedo
	Diameter    OptionalFloat // km
	Class       string        // SBDB orbit class code
	FullName    string
	Designation string // primary designation (pdes)
}

// AsteroidQuery narrows the SBDB query. The zero value requests every asteroid.
type AsteroidQuery struct {
	// Constraint is an SBDB sb-cdata filter expression in JSON
	Constraint string
	// Limit caps the number of rows; zero means no limit
	Limit int
}

// sbdbFields is the field list requested from the SBDB, in response order
var sbdbFields = []string{"e", "a", "i", "om", "w", "ma", "epoch", "H", "albedo", "diameter", "class", "full_name", "pdes"}

// Metrics represents JPL client request statistics
type Metrics struct {
	Requests      int64         `json:"requests"`
	Retries       int64         `json:"retries"`
	Errors        int64         `json:"errors"`
	TotalDuration time.Duration `json:"total_duration"`
}
