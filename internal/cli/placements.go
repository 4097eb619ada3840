package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/swarmplot/pkg/pipeline"
)

// placementsCommand creates the placements command. It runs the layout
// stage only and dumps the computed swarm point positions as JSON, for
// piping into other tools or diffing layout changes.
func (c *CLI) placementsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "placements [file]",
		Short: "Compute swarm placements and print them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := c.newRunner(true)

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				SpecPath: args[0],
				Formats:  []string{pipeline.FormatJSON},
			})
			if err != nil {
				return err
			}

			data := result.Artifacts[pipeline.FormatJSON]
			if output == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file instead of stdout")
	return cmd
}
