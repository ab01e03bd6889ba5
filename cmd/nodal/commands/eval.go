package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [targets...]",
		Short: "Evaluate nodes or node outputs",
		Long: "Evaluate each target in order. A target is a node name, which is applied,\n" +
			"or an output reference of the form node::socket, whose value is printed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			if err := c.loadProject(cmd); err != nil {
				return err
			}

			results, err := c.components.App.Evaluate(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Value == nil {
					_, _ = fmt.Fprintf(out, "%s applied\n", r.Target)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s = %v\n", r.Target, r.Value)
			}
			return nil
		},
	}
}
