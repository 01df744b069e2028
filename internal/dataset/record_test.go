package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/jpl"
)

func TestHeader(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"e", "a", "i", "om", "w", "ma", "epoch", "H", "albedo", "diameter", "class", "name", "mass", "central_body"}, Header)
}

func TestRecordFields(t *testing.T) {
	t.Parallel()

	r := Record{
		Eccentricity:  0.0933,
		SemiMajorAxis: 1.5237,
		Inclination:   0.032,
		Epoch:         2451544.5,
		Class:         catalog.ClassPlanet,
		Name:          "Mars",
		Mass:          jpl.Some(6.416928e23),
		CentralBody:   "Sun",
	}

	fields := r.Fields()
	require.Len(t, fields, len(Header))
	assert.Equal(t, []string{"0.0933", "1.5237", "0.032", "0", "0", "0", "2451544.5", "0", "0", "0", "PLA", "Mars", "6.416928e+23", "Sun"}, fields)

	r.Mass = jpl.OptionalFloat{}
	r.CentralBody = ""
	fields = r.Fields()
	require.Len(t, fields, len(Header))
	assert.Empty(t, fields[12], "unknown mass is an empty cell")
	assert.Empty(t, fields[13])
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{0.00001234, "1.234e-05"},
		{2451544.5, "2451544.5"},
		{1.89813e27, "1.89813e+27"},
		{123456789012345, "123456789012345"},
		{math.Pi, "3.141592653589793"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in), "%v", tt.in)
	}
}

func TestAngleUnitConvert(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi, Radians.convert(180), 1e-12)
	assert.InDelta(t, math.Pi/2, AngleUnit("").convert(90), 1e-12)
	assert.Equal(t, 180.0, Degrees.convert(180))
}

func TestAsteroidRecord(t *testing.T) {
	t.Parallel()

	sb := asteroid("433", "AMO", jpl.Some(16.84), jpl.OptionalFloat{})
	sb.FullName = "433 Eros (A898 PA)"

	r := asteroidRecord(sb, Degrees, true)
	assert.Equal(t, catalog.ClassAmor, r.Class)
	assert.Equal(t, "433 Eros (A898 PA)", r.Name)
	assert.Empty(t, r.CentralBody)
	assert.Equal(t, 16.84, r.Diameter)
	assert.Zero(t, r.Albedo, "unknown albedo is written as zero")
	assert.Equal(t, 10.0, r.Inclination)
	require.True(t, r.Mass.Valid)

	r = asteroidRecord(sb, Degrees, false)
	assert.False(t, r.Mass.Valid)
}
