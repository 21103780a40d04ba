package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// DeleteCommand represents the delete command
type DeleteCommand struct {
	yes bool
}

// CreateCobraCommand creates the cobra command for deleting an analysis
func (d *DeleteCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <analysis-id>",
		Short: "Permanently delete an analysis",
		Long: `Permanently delete an analysis. This cannot be undone and any share
links for it stop working immediately.

Examples:
  finsight delete a1b2c3
  finsight delete a1b2c3 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: d.runDelete,
	}

	cmd.Flags().BoolVarP(&d.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (d *DeleteCommand) runDelete(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	if !d.yes {
		answer, err := promptLine(fmt.Sprintf("Delete analysis %s? This cannot be undone [y/N]", args[0]))
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	if err := app.NewHistoryUseCase(c.analyses).Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted analysis %s\n", args[0])
	return nil
}

// NewDeleteCmd creates and returns the delete cobra command
func NewDeleteCmd() *cobra.Command {
	return (&DeleteCommand{}).CreateCobraCommand()
}
