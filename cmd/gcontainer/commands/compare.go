package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcontainer/cmd/gcontainer/handlers"
)

// Compare returns the command that compares a catalog node pool's upgrade
// options with those of a saved API response.
//
// Required flags:
//
//	--config, -c: Path to the catalog YAML file
//	--file, -f:   Path to the API response JSON
//	--pool, -p:   Node pool name in the catalog
func Compare() *cobra.Command {
	var configPath string
	var apiPath string
	var pool string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare catalog upgrade options with an API response",
		Long: `Compare the upgrade options of a catalog node pool with an API response.

Fields unset on either side are skipped. The result is "equal", the ordering
of the two records, or "incomparable" when either side has no upgrade options.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Compare(cmd.Context(), handlers.CompareOptions{
				ConfigPath: configPath,
				APIPath:    apiPath,
				Pool:       pool,
				Out:        cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to catalog file")
	cmd.Flags().StringVarP(&apiPath, "file", "f", "", "Path to API response JSON")
	cmd.Flags().StringVarP(&pool, "pool", "p", "", "Node pool name")

	// MarkFlagRequired cannot fail for flags defined on the same command
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("pool")

	return cmd
}
