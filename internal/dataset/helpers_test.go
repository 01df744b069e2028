package dataset

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/jpl"
	"github.com/orbitdata/query-data/internal/logger"
)

const testEpoch = 2451544.5

// fakeElements answers every Horizons query with the same orbit
type fakeElements struct {
	mu      sync.Mutex
	queries []jpl.ElementsQuery
	failOn  string // command that returns err
	err     error
}

func (f *fakeElements) FetchElements(_ context.Context, q jpl.ElementsQuery) (jpl.Elements, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.failOn != "" && q.Command == f.failOn {
		return jpl.Elements{}, f.err
	}
	return jpl.Elements{
		Eccentricity:  0.1,
		SemiMajorAxis: 1.5,
		Inclination:   180,
		AscendingNode: 90,
		Periapsis:     45,
		MeanAnomaly:   360,
		Epoch:         q.Epoch,
	}, nil
}

// fakeAsteroids returns a fixed response, honouring the query limit
type fakeAsteroids struct {
	mu      sync.Mutex
	bodies  []jpl.SmallBody
	queries []jpl.AsteroidQuery
	err     error
}

func (f *fakeAsteroids) QueryAsteroids(_ context.Context, q jpl.AsteroidQuery) ([]jpl.SmallBody, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	bodies := f.bodies
	if q.Limit > 0 && q.Limit < len(bodies) {
		bodies = bodies[:q.Limit]
	}
	return append([]jpl.SmallBody(nil), bodies...), nil
}

// asteroid builds an SBDB row
func asteroid(designation, class string, diameter, albedo jpl.OptionalFloat) jpl.SmallBody {
	return jpl.SmallBody{
		Elements: jpl.Elements{
			Eccentricity:  0.2,
			SemiMajorAxis: 2.7,
			Inclination:   10,
			AscendingNode: 80,
			Periapsis:     70,
			MeanAnomaly:   60,
			Epoch:         2461000.5,
		},
		H:           jpl.Some(12),
		Albedo:      albedo,
		Diameter:    diameter,
		Class:       class,
		FullName:    fmt.Sprintf("%s (test)", designation),
		Designation: designation,
	}
}

// numberedAsteroids returns n main-belt asteroids with known size
func numberedAsteroids(n int) []jpl.SmallBody {
	bodies := make([]jpl.SmallBody, 0, n)
	for i := range n {
		bodies = append(bodies, asteroid(fmt.Sprintf("%d", 100000+i), "MBA", jpl.Some(20), jpl.Some(0.2)))
	}
	return bodies
}

func newTestBuilder(t *testing.T, asteroids *fakeAsteroids, opts Options) (*Builder, *fakeElements) {
	t.Helper()
	elements := &fakeElements{}
	if opts.Epoch == 0 {
		opts.Epoch = testEpoch
	}
	b, err := NewBuilder(elements, asteroids, opts, logger.NewSlogLogger(io.Discard, logger.LogLevelError))
	require.NoError(t, err)
	return b, elements
}
