package main

import (
	"os"

	"github.com/spf13/cobra"

	"eduhub/internal/interfaces/cli/migrate"
	"eduhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eduhub",
		Short: "EduHub - educational content platform backend",
		Long:  `EduHub serves the class/subject content catalog, announcements, and the student support ticket system.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
