package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
)

// ShareCommand represents the share command
type ShareCommand struct {
	urlOnly bool
}

// CreateCobraCommand creates the cobra command for sharing an analysis
func (s *ShareCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <analysis-id>",
		Short: "Print public share links for an analysis",
		Long: `Print the public link for an analysis along with ready-to-send
WhatsApp and Twitter links. Anyone holding the link can view the report
without an account; deleting the analysis invalidates the link.

Examples:
  finsight share a1b2c3
  finsight share a1b2c3 --url-only`,
		Args: cobra.ExactArgs(1),
		RunE: s.runShare,
	}

	cmd.Flags().BoolVar(&s.urlOnly, "url-only", false, "Print only the share URL")

	return cmd
}

func (s *ShareCommand) runShare(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	links, err := app.NewShareUseCase(c.analyses, c.share).Execute(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.urlOnly {
		fmt.Fprintln(out, links.URL)
		return nil
	}

	fmt.Fprintf(out, "%s\n\n", links.Text)
	fmt.Fprintf(out, "Link:     %s\n", links.URL)
	fmt.Fprintf(out, "WhatsApp: %s\n", links.WhatsApp)
	fmt.Fprintf(out, "Twitter:  %s\n", links.Twitter)
	return nil
}

// NewShareCmd creates and returns the share cobra command
func NewShareCmd() *cobra.Command {
	return (&ShareCommand{}).CreateCobraCommand()
}
