package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crit/internal/crawl"
	criterrors "crit/internal/errors"
	"crit/internal/review"
)

var (
	graphDepth    string
	graphFormat   string
	graphMaxFiles int
)

var graphCmd = &cobra.Command{
	Use:   "graph [files...]",
	Short: "Build and print the dependency graph without analyzing",
	Long: `Crawl from the changed files and print the resulting dependency graph.
Useful for inspecting what a review at a given depth would consider.

Examples:
  crit graph src/auth.py
  crit graph --depth deep --format json src/auth.py
  crit graph --format list src/auth.py   # one path per line, for CI`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&graphDepth, "depth", "", "Analysis depth: quick, standard, or deep (default: from config)")
	graphCmd.Flags().StringVar(&graphFormat, "format", "human", "Output format (json, human, list)")
	graphCmd.Flags().IntVar(&graphMaxFiles, "max-files", 0, "Crawl file cap (default: from config)")

	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	root, err := resolveWorkspace()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	logger := newLogger(graphFormat, cfg)

	depthName := graphDepth
	if depthName == "" {
		depthName = cfg.Crawl.DefaultDepth
	}
	depth, err := review.ParseDepth(depthName)
	if err != nil {
		return criterrors.New(criterrors.DepthInvalid, "invalid --depth", err)
	}

	maxFiles := graphMaxFiles
	if maxFiles <= 0 {
		maxFiles = cfg.Crawl.MaxFiles
	}

	crawler := crawl.NewCrawler(root, cfg.Crawl.ExtraIgnores, logger)
	graph := crawler.BuildDependencyGraph(args, depth.Strategy().WithMaxFiles(maxFiles))

	if graphFormat == "list" {
		// Simple list of file paths for CI
		for _, path := range graph.AllFiles() {
			fmt.Println(path)
		}
		return nil
	}

	output, err := FormatResponse(graph, OutputFormat(graphFormat))
	if err != nil {
		return criterrors.New(criterrors.FormatInvalid, "invalid --format", err)
	}
	fmt.Println(output)
	return nil
}
