package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tracery/internal/cli"
)

// transitionsCmd represents the transitions command
var transitionsCmd = &cobra.Command{
	Use:   "transitions [definition]",
	Short: "Show the one-step transition relation of a definition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, logger, err := commonFlags(cmd)
		if err != nil {
			return err
		}
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		jsonMode, _ := cmd.Flags().GetBool("json")

		return cli.RunTransitions(cli.TransitionsOptions{
			LibraryPath: path,
			Name:        name,
			JSON:        jsonMode,
			Logger:      logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)

	transitionsCmd.Flags().Bool("json", false, "Emit transitions as JSON")
}
