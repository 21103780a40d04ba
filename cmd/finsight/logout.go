package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClients()
			if err != nil {
				return err
			}
			if err := app.NewAuthUseCase(c.auth).Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
