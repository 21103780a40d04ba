package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/app"
	"github.com/finsight-app/finsight/domain"
	"github.com/finsight-app/finsight/service"
)

// ExportCommand represents the export command
type ExportCommand struct {
	format     string
	theme      string
	outputPath string
	public     bool
	noOpen     bool
}

// CreateCobraCommand creates the cobra command for exporting a report
func (e *ExportCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <analysis-id>",
		Short: "Export a report to a file",
		Long: `Export an analysis report to a file. The default format is a
self-contained HTML document that opens in the browser; use --format for
json, yaml, or text. Without --output a timestamped filename is generated
in the configured output directory.

Examples:
  finsight export a1b2c3
  finsight export a1b2c3 --format json --output report.json
  finsight export a1b2c3 --theme dark --no-open`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExport,
	}

	cmd.Flags().StringVarP(&e.format, "format", "f", "html", "Export format (html|json|yaml|text)")
	cmd.Flags().StringVar(&e.theme, "theme", "", "Color theme for HTML output (light|dark)")
	cmd.Flags().StringVarP(&e.outputPath, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&e.public, "public", false, "Use the public share endpoint (no login required)")
	cmd.Flags().BoolVar(&e.noOpen, "no-open", false, "Don't auto-open HTML in browser")

	return cmd
}

func (e *ExportCommand) runExport(cmd *cobra.Command, args []string) error {
	c, err := buildClients()
	if err != nil {
		return err
	}

	format := domain.OutputFormat(e.format)
	theme := domain.Theme(e.theme)
	if e.theme == "" {
		theme = c.cfg.Theme()
	}

	uc := app.NewViewUseCase(c.analyses, c.formatter, c.writer, c.progress)

	outputPath := e.outputPath
	if outputPath == "" {
		// fetch first so the filename can carry the company name
		analysis, err := uc.Fetch(cmd.Context(), args[0], e.public)
		if err != nil {
			return err
		}
		company := ""
		if analysis.Result != nil {
			company = analysis.Result.CompanyName.String()
		}
		outputPath = service.DefaultOutputPath(c.cfg.Output.Directory, company, format)
	}

	req := app.ViewRequest{
		AnalysisID: args[0],
		Public:     e.public,
		Format:     format,
		Options: domain.RenderOptions{
			Theme:         theme,
			ShowBreakdown: true,
			ShowSections:  true,
			ShowLists:     true,
		},
		OutputPath:   outputPath,
		OutputWriter: os.Stdout,
		NoOpen:       e.noOpen,
	}
	return uc.Execute(cmd.Context(), req)
}

// NewExportCmd creates and returns the export cobra command
func NewExportCmd() *cobra.Command {
	return (&ExportCommand{}).CreateCobraCommand()
}
