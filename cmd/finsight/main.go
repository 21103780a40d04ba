package main

import (
	"os"

	"github.com/finsight-app/finsight/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "AI-powered financial statement analysis from your terminal",
	Long: `finsight is the command line client for FinSight, the AI-powered
financial statement analyzer.

Fetch your analyses, render them as text, JSON, YAML, or HTML, and share
public report links, all without leaving the terminal.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(NewLoginCmd())
	rootCmd.AddCommand(NewRegisterCmd())
	rootCmd.AddCommand(NewLogoutCmd())
	rootCmd.AddCommand(NewWhoamiCmd())
	rootCmd.AddCommand(NewHistoryCmd())
	rootCmd.AddCommand(NewViewCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewShareCmd())
	rootCmd.AddCommand(NewDeleteCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
