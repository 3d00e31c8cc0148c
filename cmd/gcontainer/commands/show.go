package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcontainer/cmd/gcontainer/handlers"
)

// Show returns the command that prints the upgrade options of every node
// pool in a catalog.
//
// Required flags:
//
//	--config, -c: Path to the catalog YAML file
func Show() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show node pool upgrade options from a catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Show(cmd.Context(), handlers.ShowOptions{
				ConfigPath: configPath,
				Out:        cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to catalog file")

	// MarkFlagRequired cannot fail for flags defined on the same command
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
