package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Convert the legacy store into a compact registry manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Convert(cmd.Context(), c.GetConfigPath())
		},
	}
}
