package app

import (
	"context"
	"io"

	"github.com/finsight-app/finsight/domain"
	"github.com/stretchr/testify/mock"
)

// Mock implementations shared across use case tests

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password, confirm string) (*domain.Session, error) {
	args := m.Called(ctx, name, email, password, confirm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) Logout() error {
	return m.Called().Error(0)
}

func (m *mockAuthService) CurrentUser() (*domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) GetAnalysis(ctx context.Context, id string, public bool) (*domain.Analysis, error) {
	args := m.Called(ctx, id, public)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *mockAnalysisService) ListAnalyses(ctx context.Context) ([]domain.Analysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Analysis), args.Error(1)
}

func (m *mockAnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockReportFormatter struct {
	mock.Mock
}

func (m *mockReportFormatter) Format(a *domain.Analysis, opts domain.RenderOptions, format domain.OutputFormat) (string, error) {
	args := m.Called(a, opts, format)
	return args.String(0), args.Error(1)
}

func (m *mockReportFormatter) Write(a *domain.Analysis, opts domain.RenderOptions, format domain.OutputFormat, writer io.Writer) error {
	return m.Called(a, opts, format, writer).Error(0)
}

type mockReportWriter struct {
	mock.Mock
}

func (m *mockReportWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
	args := m.Called(writer, outputPath, format, noOpen, writeFunc)
	if err := args.Error(0); err != nil {
		return err
	}
	return writeFunc(writer)
}

type mockProgressReporter struct {
	mock.Mock
}

func (m *mockProgressReporter) Start(message string) {
	m.Called(message)
}

func (m *mockProgressReporter) Stop() {
	m.Called()
}

type mockShareBuilder struct {
	mock.Mock
}

func (m *mockShareBuilder) ShareURL(analysisID string) string {
	return m.Called(analysisID).String(0)
}

func (m *mockShareBuilder) ShareText(r *domain.Report, shareURL string) string {
	return m.Called(r, shareURL).String(0)
}

func (m *mockShareBuilder) WhatsAppURL(text string) string {
	return m.Called(text).String(0)
}

func (m *mockShareBuilder) TwitterURL(text, shareURL string) string {
	return m.Called(text, shareURL).String(0)
}
