package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketdesk",
		Short: "Ticketdesk - a support ticket tracking service",
		Long:  `Ticketdesk is a support ticket tracking service with user accounts, ticket workflows, and administrative tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
