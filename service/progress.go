package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/finsight-app/finsight/domain"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// SpinnerReporter shows an indeterminate spinner while a network call is in
// flight. Fetches have no meaningful progress count, so a spinner is used
// instead of a counted bar. Rendering is suppressed when the writer is not
// a terminal (pipes, CI).
type SpinnerReporter struct {
	mu          sync.Mutex
	writer      io.Writer
	spinner     *progressbar.ProgressBar
	interactive bool
}

// NewSpinnerReporter creates a progress reporter writing to stderr.
func NewSpinnerReporter() domain.ProgressReporter {
	r := &SpinnerReporter{writer: os.Stderr}
	r.interactive = term.IsTerminal(int(os.Stderr.Fd()))
	return r
}

// SetWriter redirects spinner output and re-checks interactivity.
func (r *SpinnerReporter) SetWriter(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writer = w
	if file, ok := w.(*os.File); ok {
		r.interactive = term.IsTerminal(int(file.Fd()))
	} else {
		r.interactive = false
	}
}

// Start begins the spinner with the given message.
func (r *SpinnerReporter) Start(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.interactive || r.spinner != nil {
		return
	}

	writer := r.writer
	if writer == nil {
		writer = io.Discard
	}

	r.spinner = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)
}

// Stop finishes and clears the spinner.
func (r *SpinnerReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spinner != nil {
		_ = r.spinner.Finish()
		r.spinner = nil
	}
}
