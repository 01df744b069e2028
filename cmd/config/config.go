package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitdata/query-data/internal/conf"
)

const defaultPath = conf.ConfigName + ".yaml"

// Command creates a new cobra.Command that writes a configuration file with
// every setting at its default value.
func Command() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Write a default configuration file",
		Long: fmt.Sprintf(`Write a YAML configuration file with every setting at its default value.
The file is written to %s unless a path is given. query_data reads it from
the current directory or from $XDG_CONFIG_HOME/query_data.`, defaultPath),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPath
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", path)
			}

			if err := conf.SaveYAMLConfig(path, conf.DefaultSettings()); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
