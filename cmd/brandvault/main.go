package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandvault/brandvault/internal/interfaces/cli/migrate"
	"github.com/brandvault/brandvault/internal/interfaces/cli/server"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "brandvault",
		Short:   "BrandVault - B2B brand and asset directory",
		Version: version,
	}

	rootCmd.AddCommand(
		server.NewCommand(version),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
