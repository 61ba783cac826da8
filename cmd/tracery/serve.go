package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tracery/internal/cli"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the stateless HTTP server, exposing the process library as a JSON
API with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, logger, err := commonFlags(cmd)
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		return cli.RunServe(cli.ServeOptions{
			LibraryPath: path,
			Port:        port,
			MaxDepth:    maxDepth,
			Logger:      logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("max-depth", 0, "Cap recorded trace length (0 = unbounded)")
}
