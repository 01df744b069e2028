// Package cmd defines the query_data command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	catalogcmd "github.com/orbitdata/query-data/cmd/catalog"
	configcmd "github.com/orbitdata/query-data/cmd/config"
	"github.com/orbitdata/query-data/internal/buildinfo"
	"github.com/orbitdata/query-data/internal/conf"
	"github.com/orbitdata/query-data/internal/dataset"
	"github.com/orbitdata/query-data/internal/httpclient"
	"github.com/orbitdata/query-data/internal/jpl"
	"github.com/orbitdata/query-data/internal/logger"
	"github.com/orbitdata/query-data/internal/output"
	"github.com/orbitdata/query-data/internal/telemetry"
)

// deps are the external resources a run touches. Tests replace them.
type deps struct {
	fs        afero.Fs
	transport http.RoundTripper // nil uses the pooled default transport
	logOutput io.Writer         // nil logs to stderr
}

// flagBindings maps root command flags to their configuration keys
var flagBindings = map[string]string{
	"debug":            "debug",
	"output":           "output.path",
	"angle-unit":       "output.angle_unit",
	"quiet":            "output.quiet",
	"scenario":         "query.scenario",
	"limit":            "query.limit",
	"epoch":            "query.epoch",
	"approximate-mass": "query.approximate_mass",
}

// RootCommand creates and returns the root command
func RootCommand() *cobra.Command {
	return newRootCommand(deps{fs: afero.NewOsFs()})
}

func newRootCommand(d deps) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "query_data -o OUTPUT [-s SCENARIO] [-l LIMIT]",
		Short: "Export solar-system bodies from NASA JPL to a CSV dataset",
		Long: `query_data queries NASA JPL Horizons for planets, dwarf planets and moons and
the JPL Small-Body Database for asteroids, and writes their Keplerian orbital
elements and physical properties to a CSV file for N-body simulations.

Scenarios:
  planets_and_moons  planets, dwarf planets and moons only
  scenario1          plus asteroids with known diameter and albedo,
                     main-belt asteroids only from 10 km diameter
  scenario2          plus asteroids until the body count, Sun included, is LIMIT
  full               plus every asteroid in the database`,
		Version: buildinfo.Current().String(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, configFile)
			if err != nil {
				return err
			}
			// Settings are valid; from here on errors are not usage errors.
			cmd.SilenceUsage = true

			closeLogger, err := setupLogging(settings, d.logOutput)
			if err != nil {
				return err
			}
			defer closeLogger()

			if _, err := telemetry.InitSentry(settings); err != nil {
				logger.Global().Module("telemetry").Warn("Telemetry unavailable", logger.Error(err))
			}
			defer telemetry.Flush(telemetry.DefaultFlushTimeout)

			return run(cmd.Context(), settings, d, cmd.OutOrStdout())
		},
	}

	setupFlags(rootCmd, &configFile)

	rootCmd.AddCommand(
		catalogcmd.Command(),
		configcmd.Command(),
	)

	return rootCmd
}

// setupFlags defines the command line flags. Defaults mirror the
// configuration defaults; set flags override the configuration file.
func setupFlags(rootCmd *cobra.Command, configFile *string) {
	rootCmd.PersistentFlags().StringVar(configFile, "config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug output")

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Path of the CSV file to write (required)")
	flags.StringP("scenario", "s", conf.DefaultScenario,
		fmt.Sprintf("Bodies to include: %s", strings.Join(dataset.ScenarioNames(), ", ")))
	flags.IntP("limit", "l", 0, "Total number of bodies including the Sun (scenario2 only)")
	flags.Float64("epoch", conf.DefaultEpoch, "Julian Date of the major-body elements")
	flags.String("angle-unit", conf.DefaultAngleUnit,
		fmt.Sprintf("Unit of the angular elements: %s or %s", conf.AngleUnitRadians, conf.AngleUnitDegrees))
	flags.Bool("approximate-mass", true, "Estimate asteroid masses from diameter or absolute magnitude")
	flags.BoolP("quiet", "q", false, "Do not print the orbit class statistics")
}

// loadSettings binds the flags to viper and loads the configuration
func loadSettings(cmd *cobra.Command, configFile string) (*conf.Settings, error) {
	var bindErr error
	visit := func(f *pflag.Flag) {
		key, ok := flagBindings[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := viper.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("error binding flag %s: %w", f.Name, err)
		}
	}
	cmd.Flags().VisitAll(visit)
	if bindErr != nil {
		return nil, bindErr
	}

	return conf.Load(configFile)
}

// setupLogging installs the central logger configured by settings
func setupLogging(settings *conf.Settings, w io.Writer) (func(), error) {
	var (
		cl  *logger.CentralLogger
		err error
	)
	if w != nil {
		cl, err = logger.NewCentralLoggerWithWriter(&settings.Logging, w)
	} else {
		cl, err = logger.NewCentralLogger(&settings.Logging)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	logger.SetGlobal(cl)
	return func() { _ = cl.Close() }, nil
}

// run builds the dataset, writes it and prints the statistics
func run(ctx context.Context, settings *conf.Settings, d deps, out io.Writer) error {
	log := logger.Global().Module("cmd")

	httpClient := httpclient.New(&httpclient.Config{
		DefaultTimeout: settings.HTTP.Timeout,
		UserAgent:      settings.HTTP.UserAgent,
		Transport:      d.transport,
	})

	client, err := jpl.NewClient(jpl.Config{
		HorizonsURL: settings.JPL.HorizonsURL,
		SBDBURL:     settings.JPL.SBDBURL,
		RateLimit:   settings.JPL.RateLimit,
		MaxRetries:  settings.HTTP.MaxRetries,
		RetryDelay:  settings.HTTP.RetryDelay,
	}, httpClient, logger.Global().Module("jpl"))
	if err != nil {
		return err
	}
	defer client.Close()

	builder, err := dataset.NewBuilder(client, client, dataset.Options{
		Scenario:        dataset.Scenario(settings.Query.Scenario),
		Limit:           settings.Query.Limit,
		Epoch:           settings.Query.Epoch,
		AngleUnit:       dataset.AngleUnit(settings.Output.AngleUnit),
		ApproximateMass: settings.Query.ApproximateMass,
	}, logger.Global().Module("dataset"))
	if err != nil {
		return err
	}

	records, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if err := output.NewWriter(d.fs, logger.Global().Module("output")).WriteCSV(settings.Output.Path, records); err != nil {
		return err
	}

	metrics := client.GetMetrics()
	log.Debug("JPL requests",
		logger.Int64("requests", metrics.Requests),
		logger.Int64("retries", metrics.Retries),
		logger.Int64("errors", metrics.Errors),
		logger.Duration("total_duration", metrics.TotalDuration))

	if settings.Output.Quiet {
		return nil
	}
	return output.PrintStats(out, dataset.Summarize(records))
}
