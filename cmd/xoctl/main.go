// Command xoctl administers an XO Advisor deployment: role grants and demo
// directory data. It shares the server's configuration and storage wiring.
package main

import (
	"context"
	"fmt"
	"os"

	"xoadvisor/config"
	"xoadvisor/database/repository"
	"xoadvisor/utils"

	"github.com/spf13/cobra"
)

var (
	driver string
	store  *repository.Store
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "xoctl",
	Short: "Administer the XO Advisor resource directory",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		if driver != "" {
			config.AppConfig.DBDriver = driver
		}
		utils.InitializeLogger()

		s, _, err := repository.Open(cmd.Context())
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		store = s
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Storage backend: mongo or postgres (default from DB_DRIVER)")
	rootCmd.AddCommand(grantAdminCmd, revokeAdminCmd, seedResourcesCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
