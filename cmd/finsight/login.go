package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// LoginCommand represents the login command
type LoginCommand struct {
	email    string
	password string
}

// NewLoginCommand creates a new login command
func NewLoginCommand() *LoginCommand {
	return &LoginCommand{}
}

// CreateCobraCommand creates the cobra command for login
func (l *LoginCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your FinSight account",
		Long: `Sign in with your email and password. The session token is stored in
your user config directory and used by all other commands.

Examples:
  finsight login
  finsight login --email ravi@example.com`,
		RunE: l.runLogin,
	}

	cmd.Flags().StringVarP(&l.email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&l.password, "password", "p", "", "Account password (prompted if omitted)")

	return cmd
}

func (l *LoginCommand) runLogin(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	if l.email == "" {
		if l.email, err = promptLine("Email"); err != nil {
			return err
		}
	}
	if l.password == "" {
		if l.password, err = promptPassword("Password"); err != nil {
			return err
		}
	}

	uc := app.NewAuthUseCase(c.auth)
	session, err := uc.Login(cmd.Context(), l.email, l.password)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", session.User.Name, session.User.Email)
	return nil
}

// NewLoginCmd creates and returns the login cobra command
func NewLoginCmd() *cobra.Command {
	return NewLoginCommand().CreateCobraCommand()
}
