package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/finsight-app/finsight/domain"
	"github.com/finsight-app/finsight/internal/config"
	"github.com/finsight-app/finsight/service"
)

// clients bundles the wired service layer for one command invocation
type clients struct {
	cfg       *config.Config
	sessions  *service.FileSessionStore
	auth      *service.AuthClient
	analyses  *service.AnalysisClient
	share     *service.ShareBuilderImpl
	formatter *service.ReportFormatterImpl
	writer    *service.FileOutputWriter
	progress  domain.ProgressReporter
}

// buildClients loads configuration and wires the service layer
func buildClients() (*clients, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	sessions := service.NewFileSessionStore("")
	api := service.NewAPIClient(cfg.Backend.URL, sessions,
		service.WithTimeout(cfg.Timeout()),
		service.WithOnUnauthorized(func() {
			// the token has been rejected; keeping it would only repeat
			// the failure on the next call
			_ = sessions.Clear()
		}),
	)

	return &clients{
		cfg:       cfg,
		sessions:  sessions,
		auth:      service.NewAuthClient(api, sessions),
		analyses:  service.NewAnalysisClient(api),
		share:     service.NewShareBuilder(cfg.Share.BaseURL),
		formatter: service.NewReportFormatter(),
		writer:    service.NewFileOutputWriter(os.Stderr),
		progress:  service.NewSpinnerReporter(),
	}, nil
}

// printError prints a domain error without the internal code prefix
func printError(err error) {
	var de domain.DomainError
	if errors.As(err, &de) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", de.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// promptLine reads one trimmed line from stdin
func promptLine(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing when stdin is a terminal
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(data), nil
	}
	// piped input (tests, scripts)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
