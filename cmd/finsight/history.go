package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
	"github.com/finsight-app/finsight/domain"
)

// HistoryCommand represents the history command
type HistoryCommand struct {
	limit int
}

// CreateCobraCommand creates the cobra command for listing analyses
func (h *HistoryCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your past analyses",
		Long: `List your analyses, newest first, with their processing status.

Examples:
  finsight history
  finsight history --limit 5`,
		RunE: h.runHistory,
	}

	cmd.Flags().IntVarP(&h.limit, "limit", "l", 0, "Show at most N analyses (0 = all)")

	return cmd
}

func (h *HistoryCommand) runHistory(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	analyses, err := app.NewHistoryUseCase(c.analyses).List(cmd.Context())
	if err != nil {
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No analyses yet. Upload a document in the FinSight app to get started.")
		return nil
	}
	if h.limit > 0 && len(analyses) > h.limit {
		analyses = analyses[:h.limit]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tSCORE\tSTATUS\tCREATED\tFILE")
	for _, a := range analyses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.AnalysisID,
			companyOf(&a),
			scoreOf(&a),
			statusBadge(a.Status),
			createdOf(&a),
			a.Filename,
		)
	}
	return w.Flush()
}

func companyOf(a *domain.Analysis) string {
	if a.Result != nil && a.Result.CompanyName.Present() {
		return a.Result.CompanyName.String()
	}
	return "-"
}

func scoreOf(a *domain.Analysis) string {
	if a.Result == nil {
		return "-"
	}
	return fmt.Sprintf("%d/100", a.Result.HealthScore)
}

func statusBadge(s domain.AnalysisStatus) string {
	switch s {
	case domain.StatusCompleted:
		return "completed"
	case domain.StatusProcessing:
		return "processing…"
	case domain.StatusFailed:
		return "failed"
	default:
		return string(s)
	}
}

func createdOf(a *domain.Analysis) string {
	if a.CreatedAt.IsZero() {
		return "-"
	}
	return a.CreatedAt.Format("2006-01-02 15:04")
}

// NewHistoryCmd creates and returns the history cobra command
func NewHistoryCmd() *cobra.Command {
	return (&HistoryCommand{}).CreateCobraCommand()
}
