package app

import (
	"context"
	"fmt"
	"io"

	"github.com/finsight-app/finsight/domain"
)

// ViewRequest describes one fetch-and-render pass over an analysis
type ViewRequest struct {
	AnalysisID string
	// Public selects the token-less share endpoint
	Public bool

	Format  domain.OutputFormat
	Options domain.RenderOptions

	// OutputPath writes to a file when non-empty; otherwise OutputWriter
	// receives the report.
	OutputPath   string
	OutputWriter io.Writer
	// NoOpen suppresses opening HTML exports in the browser
	NoOpen bool
}

// ViewUseCase fetches an analysis and renders it to the requested output
type ViewUseCase struct {
	analyses  domain.AnalysisService
	formatter domain.ReportFormatter
	writer    domain.ReportWriter
	progress  domain.ProgressReporter
}

// NewViewUseCase creates a new view use case
func NewViewUseCase(
	analyses domain.AnalysisService,
	formatter domain.ReportFormatter,
	writer domain.ReportWriter,
	progress domain.ProgressReporter,
) *ViewUseCase {
	return &ViewUseCase{
		analyses:  analyses,
		formatter: formatter,
		writer:    writer,
		progress:  progress,
	}
}

// Execute performs the complete view workflow
func (uc *ViewUseCase) Execute(ctx context.Context, req ViewRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return err
	}

	analysis, err := uc.fetch(ctx, req)
	if err != nil {
		return err
	}

	if analysis.Result == nil {
		switch analysis.Status {
		case domain.StatusProcessing:
			return domain.NewNotFoundError("analysis is still processing, try again shortly", nil)
		case domain.StatusFailed:
			return domain.NewNotFoundError(messageOr(analysis.Message, "analysis failed"), nil)
		default:
			return domain.NewNotFoundError("analysis has no result", nil)
		}
	}

	return uc.writer.Write(req.OutputWriter, req.OutputPath, req.Format, req.NoOpen, func(w io.Writer) error {
		return uc.formatter.Write(analysis, req.Options, req.Format, w)
	})
}

// Fetch retrieves the analysis without rendering it
func (uc *ViewUseCase) Fetch(ctx context.Context, id string, public bool) (*domain.Analysis, error) {
	return uc.fetch(ctx, ViewRequest{AnalysisID: id, Public: public})
}

func (uc *ViewUseCase) fetch(ctx context.Context, req ViewRequest) (*domain.Analysis, error) {
	if uc.progress != nil {
		uc.progress.Start("Fetching analysis")
		defer uc.progress.Stop()
	}
	return uc.analyses.GetAnalysis(ctx, req.AnalysisID, req.Public)
}

func (uc *ViewUseCase) validateRequest(req ViewRequest) error {
	if req.AnalysisID == "" {
		return domain.NewValidationError("analysis id is required")
	}
	if req.OutputPath == "" && req.OutputWriter == nil {
		return domain.NewValidationError("output writer is required")
	}
	if !req.Options.Theme.Valid() {
		return domain.NewValidationError(fmt.Sprintf("unknown theme: %s", req.Options.Theme))
	}
	return nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
