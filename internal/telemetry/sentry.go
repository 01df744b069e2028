// Package telemetry enables optional Sentry error reporting. Nothing is sent
// unless telemetry is enabled in the configuration and a DSN is given.
package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/orbitdata/query-data/internal/buildinfo"
	"github.com/orbitdata/query-data/internal/conf"
	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
	"github.com/orbitdata/query-data/internal/privacy"
)

// DefaultFlushTimeout bounds how long Flush waits for queued events
const DefaultFlushTimeout = 2 * time.Second

// InitSentry initializes Sentry if telemetry is enabled and routes enhanced
// errors to it. It returns whether reporting is active.
func InitSentry(settings *conf.Settings) (bool, error) {
	return initSentry(settings, nil)
}

func initSentry(settings *conf.Settings, transport sentry.Transport) (bool, error) {
	log := logger.Global().Module("telemetry")

	if settings == nil || !settings.Telemetry.Enabled {
		log.Debug("Telemetry disabled")
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              settings.Telemetry.DSN,
		SampleRate:       1.0,
		Debug:            false,
		AttachStacktrace: false,
		Environment:      "production",
		ServerName:       "",
		Release:          fmt.Sprintf("query_data@%s", buildinfo.Current().GetVersion()),
		Transport:        transport,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return applyPrivacyFilters(event)
		},
	})
	if err != nil {
		return false, errors.Newf("sentry initialization failed: %w", err).
			Category(errors.CategoryConfiguration).
			Component("telemetry").
			Build()
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("scenario", settings.Query.Scenario)
	})

	errors.SetPrivacyScrubber(privacy.ScrubMessage)
	errors.SetTelemetryReporter(errors.NewSentryReporter(true))
	log.Info("Telemetry enabled")

	return true, nil
}

// applyPrivacyFilters strips host and user information from an event
func applyPrivacyFilters(event *sentry.Event) *sentry.Event {
	event.User = sentry.User{}
	event.ServerName = ""
	event.Message = privacy.ScrubMessage(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = privacy.ScrubMessage(event.Exception[i].Value)
	}

	if event.Contexts != nil {
		delete(event.Contexts, "device")
		delete(event.Contexts, "os")
		delete(event.Contexts, "runtime")
	}

	if event.Tags != nil {
		delete(event.Tags, "server_name")
		delete(event.Tags, "hostname")
	}

	return event
}

// Flush waits up to timeout for queued events and detaches the reporter
func Flush(timeout time.Duration) {
	if errors.GetTelemetryReporter() == nil {
		return
	}
	if !sentry.Flush(timeout) {
		logger.Global().Module("telemetry").Warn("Timed out flushing telemetry events")
	}
	errors.SetTelemetryReporter(nil)
	errors.SetPrivacyScrubber(nil)
}
