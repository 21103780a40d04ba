package service

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/finsight-app/finsight/domain"
)

// FileOutputWriter writes rendered reports to a file or a provided writer.
// HTML exports are opened in the default browser unless noOpen is set.
type FileOutputWriter struct {
	status io.Writer // status messages, typically stderr
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
	if status == nil {
		status = os.Stderr
	}
	return &FileOutputWriter{status: status}
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
	if outputPath == "" {
		if err := writeFunc(writer); err != nil {
			return domain.NewOutputError("failed to write report", err)
		}
		return nil
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return domain.NewOutputError(fmt.Sprintf("failed to create output file: %s", outputPath), err)
	}
	defer file.Close()

	if err := writeFunc(file); err != nil {
		return domain.NewOutputError("failed to write report", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	if format == domain.OutputFormatHTML && !noOpen {
		if err := OpenBrowser("file://" + absPath); err != nil {
			fmt.Fprintf(w.status, "Warning: could not open browser: %v\n", err)
		} else {
			fmt.Fprintf(w.status, "Report saved and opened: %s\n", absPath)
			return nil
		}
	}

	fmt.Fprintf(w.status, "%s report saved: %s\n", strings.ToUpper(string(format)), absPath)
	return nil
}

// DefaultOutputPath builds a timestamped filename for a report export,
// e.g. "finsight-tata-motors-20260830-1504.html".
func DefaultOutputPath(dir, company string, format domain.OutputFormat) string {
	slug := strings.ToLower(strings.TrimSpace(company))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_', r == '.':
			return '-'
		default:
			return -1
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "report"
	}
	name := fmt.Sprintf("finsight-%s-%s.%s", slug, time.Now().Format("20060102-1504"), format.Extension())
	return filepath.Join(dir, name)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "linux":
		for _, opener := range []string{"xdg-open", "gnome-open", "kde-open"} {
			if _, err := exec.LookPath(opener); err == nil {
				cmd = opener
				args = []string{url}
				break
			}
		}
		if cmd == "" {
			return fmt.Errorf("no browser opener found")
		}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	// Start, not Run: don't wait for the browser to exit
	if err := exec.Command(cmd, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
