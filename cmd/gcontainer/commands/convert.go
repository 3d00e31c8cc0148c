package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcontainer/cmd/gcontainer/handlers"
)

// Convert returns the command that renders a catalog's node pools in API shape.
//
// Required flags:
//
//	--config, -c: Path to the catalog YAML file
//
// Optional flags:
//
//	--output, -o: json or yaml (default from GCONTAINER_OUTPUT, else json)
func Convert() *cobra.Command {
	var configPath string
	var output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Render catalog node pools in API shape",
		Long: `Render the node pools of a catalog as the provider API represents them.

Keys are camelCase and unset fields are omitted rather than written as null.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Convert(cmd.Context(), handlers.ConvertOptions{
				ConfigPath: configPath,
				Output:     output,
				Out:        cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to catalog file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: json or yaml")

	// MarkFlagRequired cannot fail for flags defined on the same command
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
