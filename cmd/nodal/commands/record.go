package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Render the current frame into a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("out")

			if err := c.loadProject(cmd); err != nil {
				return err
			}
			if err := c.components.App.Record(cmd.Context(), out); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "frame %d written to %s\n", c.components.App.Status().CurrentFrame, out)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "frame.json", "Output file")
	return cmd
}
