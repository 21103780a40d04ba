package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// WhoamiCommand represents the whoami command
type WhoamiCommand struct {
	verify bool
}

// CreateCobraCommand creates the cobra command for session inspection
func (w *WhoamiCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Long: `Show the user behind the stored session. By default the cached user is
printed without touching the network; --verify checks the token against
the server.`,
		RunE: w.runWhoami,
	}

	cmd.Flags().BoolVar(&w.verify, "verify", false, "Verify the session token with the server")

	return cmd
}

func (w *WhoamiCommand) runWhoami(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	user, err := app.NewAuthUseCase(c.auth).Whoami(cmd.Context(), w.verify)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
	return nil
}

// NewWhoamiCmd creates and returns the whoami cobra command
func NewWhoamiCmd() *cobra.Command {
	return (&WhoamiCommand{}).CreateCobraCommand()
}
