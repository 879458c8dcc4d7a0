package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "advisorctl",
	Short: "advisorctl manages the supplement catalog and queries the advisor engines",
	Long: "advisorctl runs migrations, seeds a demo catalog and prints recommendations and price " +
		"comparisons. It talks to Postgres using the service configuration, or to a SQLite file with --db.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to a SQLite database (defaults to the configured Postgres)")
}
