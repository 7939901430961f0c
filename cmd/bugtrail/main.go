package main

import (
	"os"

	"github.com/spf13/cobra"

	"bugtrail/internal/interfaces/cli/migrate"
	"bugtrail/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bugtrail",
		Short: "Bugtrail - project and ticket tracking backend",
		Long:  `Bugtrail is a project and ticket tracking backend with a REST API, JWT authentication, and per-project dashboards.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
