package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tracery/internal/cli"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check event...",
	Short: "Check whether a definition can perform a trace",
	Long: `Replays a trace against a definition, one event name per argument.
"tau" and "tick" denote the hidden events. Exits non-zero if the trace is
rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, logger, err := commonFlags(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("definition")

		return cli.RunCheck(cli.CheckOptions{
			LibraryPath: path,
			Name:        name,
			Logger:      logger,
		}, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("definition", "d", "", "Definition to check (default: document root)")
}
