package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/jpl"
)

func sphereMass(density, diameterKm float64) float64 {
	r := diameterKm * 1000 / 2
	return density * 4 / 3 * math.Pi * r * r * r
}

func TestEstimateDiameter(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1329.0, EstimateDiameter(0, 1), 1e-9)
	assert.InDelta(t, 1329/math.Sqrt(0.25)/10, EstimateDiameter(5, 0.25), 1e-9)
}

func TestApproximateMass(t *testing.T) {
	t.Parallel()

	none := jpl.OptionalFloat{}

	tests := []struct {
		name                string
		h, albedo, diameter jpl.OptionalFloat
		want                float64
		wantOK              bool
	}{
		{"dark body with diameter", none, jpl.Some(0.05), jpl.Some(1), sphereMass(1380, 1), true},
		{"bright body with diameter", none, jpl.Some(0.3), jpl.Some(2), sphereMass(2710, 2), true},
		{"albedo at threshold is bright", none, jpl.Some(0.1), jpl.Some(1), sphereMass(2710, 1), true},
		{"unknown albedo", none, none, jpl.Some(1), sphereMass(2000, 1), true},
		{"diameter from H and albedo", jpl.Some(15), jpl.Some(0.25), none, sphereMass(2710, EstimateDiameter(15, 0.25)), true},
		{"diameter from H only", jpl.Some(15), none, none, sphereMass(2000, EstimateDiameter(15, DefaultAlbedo)), true},
		{"zero diameter falls back to H", jpl.Some(15), none, jpl.Some(0), sphereMass(2000, EstimateDiameter(15, DefaultAlbedo)), true},
		{"nothing known", none, jpl.Some(0.2), none, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ApproximateMass(tt.h, tt.albedo, tt.diameter)
			require.Equal(t, tt.wantOK, ok)
			assert.InEpsilon(t, tt.want+1, got+1, 1e-12)
		})
	}
}
