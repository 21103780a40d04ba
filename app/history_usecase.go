package app

import (
	"context"

	"github.com/finsight-app/finsight/domain"
)

// HistoryUseCase lists and deletes the user's past analyses
type HistoryUseCase struct {
	analyses domain.AnalysisService
}

// NewHistoryUseCase creates a new history use case
func NewHistoryUseCase(analyses domain.AnalysisService) *HistoryUseCase {
	return &HistoryUseCase{analyses: analyses}
}

// List returns the user's analyses in server order (newest first)
func (uc *HistoryUseCase) List(ctx context.Context) ([]domain.Analysis, error) {
	return uc.analyses.ListAnalyses(ctx)
}

// Delete permanently removes an analysis. Share links for the id stop
// resolving once this returns.
func (uc *HistoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("analysis id is required")
	}
	return uc.analyses.DeleteAnalysis(ctx, id)
}
