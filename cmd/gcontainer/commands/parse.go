package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gcontainer/cmd/gcontainer/handlers"
)

// Parse returns the command that reads a saved API response.
//
// The response may be a whole node pool or a bare upgrade options object.
//
// Required flags:
//
//	--file, -f: Path to the JSON response, or - for stdin
//
// Optional flags:
//
//	--output, -o: text, json or yaml (default from GCONTAINER_OUTPUT)
func Parse() *cobra.Command {
	var path string
	var output string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse node pool upgrade options from an API response",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Parse(cmd.Context(), handlers.ParseOptions{
				Path:   path,
				Output: output,
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to API response JSON, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text, json or yaml")

	// MarkFlagRequired cannot fail for flags defined on the same command
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
