package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finsight-app/finsight/internal/config"
)

// InitCommand represents the init command
type InitCommand struct {
	force bool
}

// CreateCobraCommand creates the cobra command for config initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with the default settings to the standard
location (or the path given with --config), so it can be edited by hand.

Examples:
  finsight init
  finsight init --config ./finsight.yaml
  finsight init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if !i.force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := config.Write(config.Default(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config file written to %s\n", path)
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	return (&InitCommand{}).CreateCobraCommand()
}
