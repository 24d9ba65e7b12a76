package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shiken-app/shiken/internal/interfaces/cli/migrate"
	"github.com/shiken-app/shiken/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiken",
		Short: "Shiken - JLPT exam preparation backend",
		Long:  `Shiken serves the JLPT problem catalog, mock exams, solve sessions, learning stats, and subscription billing.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
