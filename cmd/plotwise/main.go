package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/plotwise-inc/plotwise/internal/interfaces/cli/migrate"
	"github.com/plotwise-inc/plotwise/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plotwise",
		Short: "Plotwise - land inventory configuration engine",
		Long:  `Plotwise manages property land inventories: blocks, plots, status tracking and versioned layout configurations.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
