package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// RegisterCommand represents the register command
type RegisterCommand struct {
	name     string
	email    string
	password string
}

// NewRegisterCommand creates a new register command
func NewRegisterCommand() *RegisterCommand {
	return &RegisterCommand{}
}

// CreateCobraCommand creates the cobra command for registration
func (r *RegisterCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a FinSight account",
		Long: `Create a new account and sign in. The password must be at least 8
characters and is confirmed interactively when not passed as a flag.

Examples:
  finsight register
  finsight register --name "Ravi" --email ravi@example.com`,
		RunE: r.runRegister,
	}

	cmd.Flags().StringVarP(&r.name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&r.email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&r.password, "password", "p", "", "Account password (prompted if omitted)")

	return cmd
}

func (r *RegisterCommand) runRegister(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	if r.name == "" {
		if r.name, err = promptLine("Name"); err != nil {
			return err
		}
	}
	if r.email == "" {
		if r.email, err = promptLine("Email"); err != nil {
			return err
		}
	}

	confirm := r.password
	if r.password == "" {
		if r.password, err = promptPassword("Password"); err != nil {
			return err
		}
		if confirm, err = promptPassword("Confirm password"); err != nil {
			return err
		}
	}

	uc := app.NewAuthUseCase(c.auth)
	session, err := uc.Register(cmd.Context(), r.name, r.email, r.password, confirm)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Account created. Logged in as %s (%s)\n", session.User.Name, session.User.Email)
	return nil
}

// NewRegisterCmd creates and returns the register cobra command
func NewRegisterCmd() *cobra.Command {
	return NewRegisterCommand().CreateCobraCommand()
}
