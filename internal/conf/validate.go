// conf/validate.go

package conf

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/orbitdata/query-data/internal/dataset"
	"github.com/orbitdata/query-data/internal/errors"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(ve.Errors, "; ")
}

// ErrorCategory marks validation problems for the errors package
func (ve ValidationError) ErrorCategory() errors.ErrorCategory {
	return errors.CategoryValidation
}

// ValidateSettings validates the entire Settings struct. It is run before any
// network activity.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	for _, validate := range []func(*Settings) error{
		validateOutputSettings,
		validateQuerySettings,
		validateJPLSettings,
		validateHTTPSettings,
		validateTelemetrySettings,
	} {
		if err := validate(settings); err != nil {
			ve.Errors = append(ve.Errors, err.Error())
		}
	}

	if len(ve.Errors) > 0 {
		return errors.New(ve).
			Category(errors.CategoryValidation).
			Component("config").
			Build()
	}

	return nil
}

func validateOutputSettings(s *Settings) error {
	if strings.TrimSpace(s.Output.Path) == "" {
		return fmt.Errorf("output path is required")
	}
	if s.Output.AngleUnit != AngleUnitRadians && s.Output.AngleUnit != AngleUnitDegrees {
		return fmt.Errorf("angle unit must be %q or %q, got %q", AngleUnitRadians, AngleUnitDegrees, s.Output.AngleUnit)
	}
	return nil
}

func validateQuerySettings(s *Settings) error {
	scenario, err := dataset.ParseScenario(s.Query.Scenario)
	if err != nil {
		return err
	}
	if err := dataset.ValidateLimit(scenario, s.Query.Limit); err != nil {
		return err
	}
	if s.Query.Epoch <= 0 {
		return fmt.Errorf("epoch must be a positive Julian Date, got %g", s.Query.Epoch)
	}
	return nil
}

func validateJPLSettings(s *Settings) error {
	var errs []string
	for name, raw := range map[string]string{"horizons_url": s.JPL.HorizonsURL, "sbdb_url": s.JPL.SBDBURL} {
		if err := validateServiceURL(raw); err != nil {
			errs = append(errs, fmt.Sprintf("jpl.%s: %v", name, err))
		}
	}
	if s.JPL.RateLimit <= 0 {
		errs = append(errs, fmt.Sprintf("jpl.rate_limit must be positive, got %g", s.JPL.RateLimit))
	}
	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateHTTPSettings(s *Settings) error {
	if s.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", s.HTTP.Timeout)
	}
	if s.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must be non-negative, got %d", s.HTTP.MaxRetries)
	}
	if s.HTTP.RetryDelay < 0 {
		return fmt.Errorf("http.retry_delay must not be negative, got %s", s.HTTP.RetryDelay)
	}
	return nil
}

func validateTelemetrySettings(s *Settings) error {
	if s.Telemetry.Enabled && s.Telemetry.DSN == "" {
		return fmt.Errorf("telemetry.dsn is required when telemetry is enabled")
	}
	return nil
}

func validateServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
