package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupViewUseCase() (*ViewUseCase, *mockAnalysisService, *mockReportFormatter, *mockReportWriter, *mockProgressReporter) {
	analyses := &mockAnalysisService{}
	formatter := &mockReportFormatter{}
	writer := &mockReportWriter{}
	progress := &mockProgressReporter{}
	return NewViewUseCase(analyses, formatter, writer, progress), analyses, formatter, writer, progress
}

func completedAnalysis() *domain.Analysis {
	return &domain.Analysis{
		AnalysisID: "a-1",
		Status:     domain.StatusCompleted,
		Result:     &domain.Report{CompanyName: "Tata Motors", HealthScore: 82},
	}
}

func validViewRequest() ViewRequest {
	return ViewRequest{
		AnalysisID:   "a-1",
		Format:       domain.OutputFormatText,
		Options:      domain.DefaultRenderOptions(),
		OutputWriter: &bytes.Buffer{},
	}
}

func TestViewExecute(t *testing.T) {
	uc, analyses, formatter, writer, progress := setupViewUseCase()
	req := validViewRequest()
	analysis := completedAnalysis()

	progress.On("Start", "Fetching analysis").Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", false).Return(analysis, nil)
	writer.On("Write", req.OutputWriter, "", domain.OutputFormatText, false, mock.Anything).Return(nil)
	formatter.On("Write", analysis, req.Options, domain.OutputFormatText, req.OutputWriter).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), req))

	analyses.AssertExpectations(t)
	formatter.AssertExpectations(t)
	writer.AssertExpectations(t)
	progress.AssertExpectations(t)
}

func TestViewExecutePublic(t *testing.T) {
	uc, analyses, formatter, writer, progress := setupViewUseCase()
	req := validViewRequest()
	req.Public = true
	analysis := completedAnalysis()

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", true).Return(analysis, nil)
	writer.On("Write", mock.Anything, "", domain.OutputFormatText, false, mock.Anything).Return(nil)
	formatter.On("Write", analysis, req.Options, domain.OutputFormatText, mock.Anything).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), req))
	analyses.AssertExpectations(t)
}

func TestViewExecuteValidation(t *testing.T) {
	uc, _, _, _, _ := setupViewUseCase()

	tests := []struct {
		name   string
		mutate func(*ViewRequest)
	}{
		{"missing id", func(r *ViewRequest) { r.AnalysisID = "" }},
		{"missing writer", func(r *ViewRequest) { r.OutputWriter = nil }},
		{"unknown theme", func(r *ViewRequest) { r.Options.Theme = "sepia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validViewRequest()
			tt.mutate(&req)
			err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestViewExecuteStillProcessing(t *testing.T) {
	uc, analyses, _, _, progress := setupViewUseCase()
	processing := &domain.Analysis{AnalysisID: "a-1", Status: domain.StatusProcessing}

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", false).Return(processing, nil)

	err := uc.Execute(context.Background(), validViewRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still processing")
	progress.AssertCalled(t, "Stop")
}

func TestViewExecuteFailedAnalysis(t *testing.T) {
	uc, analyses, _, _, progress := setupViewUseCase()
	failed := &domain.Analysis{AnalysisID: "a-1", Status: domain.StatusFailed, Message: "could not parse document"}

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", false).Return(failed, nil)

	err := uc.Execute(context.Background(), validViewRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse document")
}

func TestViewExecuteFetchError(t *testing.T) {
	uc, analyses, _, _, progress := setupViewUseCase()

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", false).
		Return(nil, domain.NewNotFoundError("not found", nil))

	err := uc.Execute(context.Background(), validViewRequest())
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	progress.AssertCalled(t, "Stop")
}

func TestViewExecuteToFile(t *testing.T) {
	uc, analyses, formatter, writer, progress := setupViewUseCase()
	req := validViewRequest()
	req.OutputWriter = nil
	req.OutputPath = "/tmp/report.html"
	req.Format = domain.OutputFormatHTML
	analysis := completedAnalysis()

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", false).Return(analysis, nil)
	writer.On("Write", nil, "/tmp/report.html", domain.OutputFormatHTML, false, mock.Anything).Return(nil)
	formatter.On("Write", analysis, req.Options, domain.OutputFormatHTML, mock.Anything).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), req))
	writer.AssertExpectations(t)
}

func TestViewFetch(t *testing.T) {
	uc, analyses, _, _, progress := setupViewUseCase()
	analysis := completedAnalysis()

	progress.On("Start", mock.Anything).Return()
	progress.On("Stop").Return()
	analyses.On("GetAnalysis", mock.Anything, "a-1", true).Return(analysis, nil)

	got, err := uc.Fetch(context.Background(), "a-1", true)
	require.NoError(t, err)
	assert.Equal(t, analysis, got)
}
