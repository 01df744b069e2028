package catalog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbitdata/query-data/internal/catalog"
	"github.com/orbitdata/query-data/internal/dataset"
	"github.com/orbitdata/query-data/internal/output"
)

// Command creates a new cobra.Command that prints the built-in major-body catalog.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the planets, dwarf planets and moons queried from Horizons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, output.RenderCatalog(catalog.MajorBodies())); err != nil {
				return err
			}
			_, err := fmt.Fprintf(out, "\n%d bodies; the smallest scenario2 limit is %d\n",
				catalog.MajorBodyCount(), dataset.MinimumLimit())
			return err
		},
	}

	return cmd
}
