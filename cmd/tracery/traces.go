package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tracery/internal/cli"
)

// tracesCmd represents the traces command
var tracesCmd = &cobra.Command{
	Use:   "traces [definition]",
	Short: "Enumerate the maximal finite traces of a definition",
	Long: `Enumerates the maximal finite traces of a definition from the library,
defaulting to the document root. Hidden τ steps are walked through silently;
✔ is recorded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, logger, err := commonFlags(cmd)
		if err != nil {
			return err
		}
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		jsonMode, _ := cmd.Flags().GetBool("json")

		return cli.RunTraces(cli.TracesOptions{
			LibraryPath: path,
			Name:        name,
			MaxDepth:    maxDepth,
			JSON:        jsonMode,
			Logger:      logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(tracesCmd)

	tracesCmd.Flags().Int("max-depth", 0, "Cap recorded trace length (0 = unbounded)")
	tracesCmd.Flags().Bool("json", false, "Emit traces as JSON")
}
