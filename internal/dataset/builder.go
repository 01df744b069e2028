package dataset

import (
	"context"
	"time"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/jpl"
	"github.com/orbitdata/query-data/internal/logger"
)

// ElementsSource provides osculating elements of major bodies
type ElementsSource interface {
	FetchElements(ctx context.Context, q jpl.ElementsQuery) (jpl.Elements, error)
}

// AsteroidSource provides small-body rows
type AsteroidSource interface {
	QueryAsteroids(ctx context.Context, q jpl.AsteroidQuery) ([]jpl.SmallBody, error)
}

// Options configure a Builder
type Options struct {
	Scenario        Scenario
	Limit           int     // total body count including the Sun, Scenario2 only
	Epoch           float64 // Julian Date of the major-body elements
	AngleUnit       AngleUnit
	ApproximateMass bool
}

// Builder assembles the dataset rows for one scenario
type Builder struct {
	elements  ElementsSource
	asteroids AsteroidSource
	opts      Options
	logger    logger.Logger
}

// NewBuilder validates opts and returns a Builder. A nil log uses the global logger.
func NewBuilder(elements ElementsSource, asteroids AsteroidSource, opts Options, log logger.Logger) (*Builder, error) {
	if elements == nil || asteroids == nil {
		return nil, errors.Newf("dataset builder needs an elements and an asteroid source").
			Category(errors.CategoryConfiguration).
			Component("dataset").
			Build()
	}
	if _, err := ParseScenario(string(opts.Scenario)); err != nil {
		return nil, err
	}
	if err := ValidateLimit(opts.Scenario, opts.Limit); err != nil {
		return nil, err
	}
	if opts.Epoch <= 0 {
		return nil, errors.Newf("epoch must be a positive Julian Date, got %g", opts.Epoch).
			Category(errors.CategoryValidation).
			Component("dataset").
			Build()
	}
	switch opts.AngleUnit {
	case "":
		opts.AngleUnit = Radians
	case Radians, Degrees:
	default:
		return nil, errors.Newf("invalid angle unit %q", opts.AngleUnit).
			Category(errors.CategoryValidation).
			Component("dataset").
			Build()
	}
	if log == nil {
		log = logger.Global().Module("dataset")
	}

	return &Builder{elements: elements, asteroids: asteroids, opts: opts, logger: log}, nil
}

// Build queries every source the scenario needs and returns the rows in
// catalog order followed by SBDB order. The Sun is never included.
func (b *Builder) Build(ctx context.Context) ([]Record, error) {
	b.logger.Info("Building dataset",
		logger.String("scenario", string(b.opts.Scenario)),
		logger.Int("limit", b.opts.Limit),
		logger.Float64("epoch", b.opts.Epoch))

	records, err := b.majorBodies(ctx)
	if err != nil {
		return nil, err
	}

	if !b.opts.Scenario.IncludesAsteroids() {
		return records, nil
	}

	asteroids, err := b.smallBodies(ctx)
	if err != nil {
		return nil, err
	}

	return append(records, asteroids...), nil
}

// majorBodies fetches the elements of every catalog body in catalog order
func (b *Builder) majorBodies(ctx context.Context) ([]Record, error) {
	start := time.Now()
	bodies := catalog.MajorBodies()
	records := make([]Record, 0, len(bodies))

	for i, body := range bodies {
		if err := ctx.Err(); err != nil {
			return nil, errors.New(err).
				Category(errors.CategoryCancellation).
				Component("dataset").
				Context("fetched", i).
				Build()
		}

		center, err := body.HorizonsCenter()
		if err != nil {
			return nil, errors.New(err).
				Category(errors.CategoryConfiguration).
				Component("dataset").
				Build()
		}

		el, err := b.elements.FetchElements(ctx, jpl.ElementsQuery{
			Command: body.Command,
			Center:  center,
			Epoch:   b.opts.Epoch,
		})
		if err != nil {
			return nil, errors.Newf("fetch elements of %s: %w", body.Name, err).
				Category(categoryOf(err)).
				Component("dataset").
				Context("body", body.Name).
				Build()
		}

		records = append(records, majorBodyRecord(body, el, b.opts.AngleUnit))
		b.logger.Debug("Fetched major body",
			logger.String("name", body.Name),
			logger.String("center", center),
			logger.Int("progress", i+1),
			logger.Int("total", len(bodies)))
	}

	b.logger.Info("Fetched planets, dwarf planets and moons",
		logger.Int("count", len(records)),
		logger.Duration("elapsed", time.Since(start)))

	return records, nil
}

// smallBodies queries the SBDB for the scenario and converts the selected rows
func (b *Builder) smallBodies(ctx context.Context) ([]Record, error) {
	duplicates := len(catalog.DuplicateDesignations())
	query, ok := b.opts.Scenario.asteroidQuery(b.opts.Limit, duplicates)
	if !ok {
		b.logger.Info("Limit is reached by the major bodies, skipping small-body query",
			logger.Int("limit", b.opts.Limit))
		return nil, nil
	}

	start := time.Now()
	bodies, err := b.asteroids.QueryAsteroids(ctx, query)
	if err != nil {
		return nil, errors.Newf("query small bodies: %w", err).
			Category(categoryOf(err)).
			Component("dataset").
			Context("scenario", string(b.opts.Scenario)).
			Build()
	}

	wanted := 0
	if b.opts.Scenario == Scenario2 {
		wanted = b.opts.Limit - MinimumLimit()
	}
	res := selectAsteroids(b.opts.Scenario, bodies, wanted)

	for class, n := range res.unknownClass {
		b.logger.Warn("Keeping asteroids with unrecognised orbit class",
			logger.String("class", string(class)),
			logger.Int("count", n))
	}
	if res.limitShortage > 0 {
		b.logger.Warn("Small-body database returned fewer asteroids than the limit requires",
			logger.Int("limit", b.opts.Limit),
			logger.Int("missing", res.limitShortage))
	}

	records := make([]Record, 0, len(res.kept))
	for _, sb := range res.kept {
		records = append(records, asteroidRecord(sb, b.opts.AngleUnit, b.opts.ApproximateMass))
	}

	b.logger.Info("Fetched asteroids",
		logger.Int("count", len(records)),
		logger.Int("received", len(bodies)),
		logger.Int("duplicates_dropped", res.duplicates),
		logger.Int("rejected", res.rejected),
		logger.Duration("elapsed", time.Since(start)))

	return records, nil
}

// categoryOf keeps the category of an enhanced error when rewrapping it
func categoryOf(err error) errors.ErrorCategory {
	var enhanced *errors.EnhancedError
	if errors.As(err, &enhanced) {
		return enhanced.Category
	}
	return errors.CategoryNetwork
}
