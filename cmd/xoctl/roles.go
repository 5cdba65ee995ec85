package main

import (
	"fmt"

	"xoadvisor/models"

	"github.com/spf13/cobra"
)

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <user-id>",
	Short: "Give an account access to the admin console",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := store.Accounts.GetByID(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("lookup %s: %w", args[0], err)
		}
		if err := store.Roles.Grant(cmd.Context(), args[0], models.AdminRole); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "granted %s to %s\n", models.AdminRole, args[0])
		return nil
	},
}

var revokeAdminCmd = &cobra.Command{
	Use:   "revoke-admin <user-id>",
	Short: "Remove admin console access from an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Roles.Revoke(cmd.Context(), args[0], models.AdminRole); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "revoked %s from %s\n", models.AdminRole, args[0])
		return nil
	},
}
