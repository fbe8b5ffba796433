package cmd

import (
	"fmt"

	"github.com/Adravilag/sagebox-lab/internal/app"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change where icons are read and written",
}

func init() {
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the resolved configuration",
			Args:  cobra.NoArgs,
			RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
				return printJSON(cmd.OutOrStdout(), a.Info())
			}),
		},
		&cobra.Command{
			Use:   "set-output <path>",
			Short: "Set the directory that receives the generated icon module",
			Args:  cobra.ExactArgs(1),
			RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
				if err := a.SetOutputPath(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Output path set to %s\n", okStyle.Render("✓"), a.Writer().OutputDir())
				return nil
			}),
		},
	)
}
