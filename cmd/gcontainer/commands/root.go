// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcontainer/cmd/gcontainer/handlers"
)

// Root returns the root command for the gcontainer CLI.
//
// The root command sets up logging for all subcommands from the
// GCONTAINER_* environment and the --verbose flag.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gcontainer",
		Short:         "Convert GKE node pool management settings between catalog and API form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := handlers.Setup(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(Show())
	cmd.AddCommand(Convert())
	cmd.AddCommand(Parse())
	cmd.AddCommand(Compare())
	cmd.AddCommand(Version())

	return cmd
}
