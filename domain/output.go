package domain

import "io"

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// Extension returns the file extension for the format
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatJSON:
		return "json"
	case OutputFormatYAML:
		return "yaml"
	case OutputFormatHTML:
		return "html"
	default:
		return "txt"
	}
}

// ReportFormatter renders a fetched analysis into an output format.
// Text and HTML go through the view-model renderer; JSON and YAML emit the
// normalized report data itself.
type ReportFormatter interface {
	Format(a *Analysis, opts RenderOptions, format OutputFormat) (string, error)
	Write(a *Analysis, opts RenderOptions, format OutputFormat, writer io.Writer) error
}

// ReportWriter abstracts writing reports to a destination (file or writer)
// and side effects like opening HTML exports in a browser.
//
// Implementations live in the service layer.
type ReportWriter interface {
	// Write writes formatted content using the provided writeFunc.
	// - If outputPath is non-empty, implementations should create/truncate
	//   the file at that path and pass it as the writer to writeFunc.
	// - If outputPath is empty, implementations should pass the provided
	//   writer to writeFunc.
	Write(writer io.Writer, outputPath string, format OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error
}

// ProgressReporter shows activity while a fetch is in flight
type ProgressReporter interface {
	Start(message string)
	Stop()
}

// ShareBuilder produces shareable links and summaries from a report.
// All methods are pure string templating with no network calls.
type ShareBuilder interface {
	ShareURL(analysisID string) string
	ShareText(r *Report, shareURL string) string
	WhatsAppURL(text string) string
	TwitterURL(text, shareURL string) string
}
