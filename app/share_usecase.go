package app

import (
	"context"

	"github.com/finsight-app/finsight/domain"
)

// ShareLinks bundles everything needed to share one analysis
type ShareLinks struct {
	URL      string
	Text     string
	WhatsApp string
	Twitter  string
}

// ShareUseCase resolves an analysis into its public share links. The
// analysis is fetched first so sharing a nonexistent or unfinished
// analysis fails before a dead link is handed out.
type ShareUseCase struct {
	analyses domain.AnalysisService
	builder  domain.ShareBuilder
}

// NewShareUseCase creates a new share use case
func NewShareUseCase(analyses domain.AnalysisService, builder domain.ShareBuilder) *ShareUseCase {
	return &ShareUseCase{analyses: analyses, builder: builder}
}

// Execute builds the share links for an analysis
func (uc *ShareUseCase) Execute(ctx context.Context, id string) (*ShareLinks, error) {
	if id == "" {
		return nil, domain.NewValidationError("analysis id is required")
	}

	analysis, err := uc.analyses.GetAnalysis(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if analysis.Result == nil {
		return nil, domain.NewNotFoundError("analysis has no result to share", nil)
	}

	url := uc.builder.ShareURL(analysis.AnalysisID)
	text := uc.builder.ShareText(analysis.Result, url)
	return &ShareLinks{
		URL:      url,
		Text:     text,
		WhatsApp: uc.builder.WhatsAppURL(text),
		Twitter:  uc.builder.TwitterURL(text, url),
	}, nil
}
