package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tracery/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "tracery",
	Short: "Tracery is a CSP process algebra engine",
	Long: `Tracery builds CSP (Communicating Sequential Processes) terms from YAML
libraries and computes their trace semantics: maximal finite traces, trace
satisfaction, and transition relations.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "processes.yaml", "Path to the process library")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// commonFlags resolves the persistent flags every command needs.
func commonFlags(cmd *cobra.Command) (string, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("file")
	level, _ := cmd.Flags().GetString("log-level")
	logger, err := cli.NewLogger(level)
	if err != nil {
		return "", nil, err
	}
	return path, logger, nil
}
