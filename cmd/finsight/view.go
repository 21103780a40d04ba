package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
	"github.com/finsight-app/finsight/domain"
)

// ViewCommand represents the view command
type ViewCommand struct {
	public bool

	json bool
	yaml bool
	html bool

	theme       string
	noBreakdown bool
	noSections  bool
	noLists     bool

	outputPath string
	noOpen     bool
}

// CreateCobraCommand creates the cobra command for viewing an analysis
func (v *ViewCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <analysis-id>",
		Short: "Fetch and render an analysis",
		Long: `Fetch an analysis and render its report.

By default the report is printed as text to stdout. Use --json, --yaml,
or --html for other formats, and --output to write to a file. HTML
written to a file opens in the browser unless --no-open is set.

Public share links can be viewed without logging in via --public.

Examples:
  finsight view a1b2c3
  finsight view a1b2c3 --json
  finsight view a1b2c3 --html --output report.html
  finsight view a1b2c3 --public --theme dark`,
		Args: cobra.ExactArgs(1),
		RunE: v.runView,
	}

	cmd.Flags().BoolVar(&v.public, "public", false, "Use the public share endpoint (no login required)")
	cmd.Flags().BoolVar(&v.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&v.yaml, "yaml", false, "Output as YAML")
	cmd.Flags().BoolVar(&v.html, "html", false, "Output as HTML")
	cmd.Flags().StringVar(&v.theme, "theme", "", "Color theme for HTML output (light|dark)")
	cmd.Flags().BoolVar(&v.noBreakdown, "no-breakdown", false, "Hide the score breakdown")
	cmd.Flags().BoolVar(&v.noSections, "no-sections", false, "Hide the analytical sections")
	cmd.Flags().BoolVar(&v.noLists, "no-lists", false, "Hide strengths, risks, and watch lists")
	cmd.Flags().StringVarP(&v.outputPath, "output", "o", "", "Write the report to a file")
	cmd.Flags().BoolVar(&v.noOpen, "no-open", false, "Don't auto-open HTML in browser")

	return cmd
}

func (v *ViewCommand) runView(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	format := domain.OutputFormatText
	switch {
	case v.json:
		format = domain.OutputFormatJSON
	case v.yaml:
		format = domain.OutputFormatYAML
	case v.html:
		format = domain.OutputFormatHTML
	}

	theme := domain.Theme(v.theme)
	if v.theme == "" {
		theme = c.cfg.Theme()
	}

	req := app.ViewRequest{
		AnalysisID: args[0],
		Public:     v.public,
		Format:     format,
		Options: domain.RenderOptions{
			Theme:         theme,
			ShowBreakdown: !v.noBreakdown,
			ShowSections:  !v.noSections,
			ShowLists:     !v.noLists,
		},
		OutputPath:   v.outputPath,
		OutputWriter: os.Stdout,
		NoOpen:       v.noOpen,
	}

	uc := app.NewViewUseCase(c.analyses, c.formatter, c.writer, c.progress)
	return uc.Execute(cmd.Context(), req)
}

// NewViewCmd creates and returns the view cobra command
func NewViewCmd() *cobra.Command {
	return (&ViewCommand{}).CreateCobraCommand()
}
