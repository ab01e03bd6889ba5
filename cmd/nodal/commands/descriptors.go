package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newDescriptorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "descriptors",
		Short: "List the node types of both domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c.components.App.Descriptors()); err != nil {
				return zerr.Wrap(err, "failed to encode descriptors")
			}
			return enc.Close()
		},
	}
}
