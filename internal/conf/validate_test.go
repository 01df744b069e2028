package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitdata/query-data/internal/errors"
)

func validSettings() *Settings {
	s := DefaultSettings()
	s.Output.Path = "bodies.csv"
	return s
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr string
	}{
		{"defaults with output", func(*Settings) {}, ""},
		{"blank output", func(s *Settings) { s.Output.Path = "  " }, "output path is required"},
		{"angle unit", func(s *Settings) { s.Output.AngleUnit = "turns" }, `angle unit must be "rad" or "deg"`},
		{"unknown scenario", func(s *Settings) { s.Query.Scenario = "scenario3" }, "scenario3"},
		{"scenario2 needs limit", func(s *Settings) { s.Query.Scenario = "scenario2" }, "limit must be provided"},
		{"scenario2 with limit", func(s *Settings) {
			s.Query.Scenario = "scenario2"
			s.Query.Limit = 1000
		}, ""},
		{"epoch", func(s *Settings) { s.Query.Epoch = 0 }, "epoch must be a positive Julian Date"},
		{"horizons url", func(s *Settings) { s.JPL.HorizonsURL = "file:///tmp/h" }, "jpl.horizons_url"},
		{"rate limit", func(s *Settings) { s.JPL.RateLimit = 0 }, "jpl.rate_limit must be positive"},
		{"timeout", func(s *Settings) { s.HTTP.Timeout = 0 }, "http.timeout must be positive"},
		{"retries", func(s *Settings) { s.HTTP.MaxRetries = -1 }, "http.max_retries"},
		{"telemetry without dsn", func(s *Settings) { s.Telemetry.Enabled = true }, "telemetry.dsn is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSettings()
			tt.modify(s)
			err := ValidateSettings(s)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
		})
	}
}

func TestValidateSettings_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	s := validSettings()
	s.Output.Path = ""
	s.HTTP.Timeout = 0

	err := ValidateSettings(s)
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}
