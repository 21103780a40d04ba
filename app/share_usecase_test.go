package app

import (
	"context"
	"testing"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShareExecute(t *testing.T) {
	analyses := &mockAnalysisService{}
	builder := &mockShareBuilder{}
	uc := NewShareUseCase(analyses, builder)

	report := &domain.Report{CompanyName: "Tata Motors", HealthScore: 82}
	analysis := &domain.Analysis{AnalysisID: "a-1", Status: domain.StatusCompleted, Result: report}

	analyses.On("GetAnalysis", mock.Anything, "a-1", false).Return(analysis, nil)
	builder.On("ShareURL", "a-1").Return("https://finsight-vert.vercel.app/share/a-1")
	builder.On("ShareText", report, "https://finsight-vert.vercel.app/share/a-1").Return("share text")
	builder.On("WhatsAppURL", "share text").Return("https://wa.me/?text=share+text")
	builder.On("TwitterURL", "share text", "https://finsight-vert.vercel.app/share/a-1").Return("https://twitter.com/intent/tweet")

	links, err := uc.Execute(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, "https://finsight-vert.vercel.app/share/a-1", links.URL)
	assert.Equal(t, "share text", links.Text)
	assert.Contains(t, links.WhatsApp, "wa.me")
	assert.Contains(t, links.Twitter, "twitter.com")
	builder.AssertExpectations(t)
}

func TestShareExecuteNoResult(t *testing.T) {
	analyses := &mockAnalysisService{}
	builder := &mockShareBuilder{}
	uc := NewShareUseCase(analyses, builder)

	analyses.On("GetAnalysis", mock.Anything, "a-1", false).
		Return(&domain.Analysis{AnalysisID: "a-1", Status: domain.StatusProcessing}, nil)

	_, err := uc.Execute(context.Background(), "a-1")
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
	builder.AssertNotCalled(t, "ShareURL", mock.Anything)
}

func TestShareExecuteEmptyID(t *testing.T) {
	uc := NewShareUseCase(&mockAnalysisService{}, &mockShareBuilder{})

	_, err := uc.Execute(context.Background(), "")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestShareExecuteFetchError(t *testing.T) {
	analyses := &mockAnalysisService{}
	uc := NewShareUseCase(analyses, &mockShareBuilder{})

	analyses.On("GetAnalysis", mock.Anything, "gone", false).
		Return(nil, domain.NewNotFoundError("not found", nil))

	_, err := uc.Execute(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, domain.IsNotFoundError(err))
}
