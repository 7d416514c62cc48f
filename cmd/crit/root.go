package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"crit/internal/config"
	criterrors "crit/internal/errors"
	"crit/internal/logging"
	"crit/internal/version"
)

var (
	// workspaceFlag is the CLI --workspace flag value
	workspaceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "crit",
	Short: "crit - dependency-scoped code review",
	Long: `crit reviews pull requests by crawling the dependency graph of the changed
files instead of scanning the whole repository. It bounds the crawl by depth
and a hard file cap, then runs analyzers only over the files a reviewer would
actually need to read.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("crit version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", ".",
		"Workspace root used for .gitignore lookup and relative paths")
}

// resolveWorkspace returns the absolute workspace root, verifying it exists.
func resolveWorkspace() (string, error) {
	abs, err := filepath.Abs(workspaceFlag)
	if err != nil {
		return "", criterrors.New(criterrors.WorkspaceNotFound, "cannot resolve workspace path", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", criterrors.New(criterrors.WorkspaceNotFound,
			fmt.Sprintf("workspace root %s is not a directory", abs), err)
	}
	return abs, nil
}

// loadConfig loads and validates the workspace configuration.
func loadConfig(workspaceRoot string) (*config.Config, error) {
	cfg, err := config.Load(workspaceRoot)
	if err != nil {
		return nil, criterrors.New(criterrors.ConfigInvalid, "cannot load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, criterrors.New(criterrors.ConfigInvalid, "invalid configuration", err)
	}
	return cfg, nil
}

// newLogger builds a logger matching the requested output format: JSON
// output gets JSON logs so the stream stays machine-readable.
func newLogger(outputFormat string, cfg *config.Config) *logging.Logger {
	logFormat := logging.HumanFormat
	if outputFormat == "json" || cfg.Logging.Format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.LogLevel(cfg.Logging.Level),
	})
}
