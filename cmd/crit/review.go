package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"crit/internal/analyze"
	"crit/internal/crawl"
	criterrors "crit/internal/errors"
	"crit/internal/review"
)

var (
	reviewDepth    string
	reviewFormat   string
	reviewMaxFiles int
	reviewOut      string
	reviewStdin    bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [files...]",
	Short: "Review changed files and their dependency neighborhood",
	Long: `Build a bounded dependency graph from the changed files and run the
analyzer over the subset the requested depth selects.

Depths:
  quick     changed files only
  standard  changed files + direct imports
  deep      standard + test files + indirect dependencies

Examples:
  crit review src/auth.py src/db.py
  crit review --depth deep src/auth.py
  git diff --name-only main | crit review --stdin --format json
  crit review --out report.json.gz src/auth.py`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewDepth, "depth", "", "Analysis depth: quick, standard, or deep (default: from config)")
	reviewCmd.Flags().StringVar(&reviewFormat, "format", "human", "Output format (json, human)")
	reviewCmd.Flags().IntVar(&reviewMaxFiles, "max-files", 0, "Crawl file cap (default: from config)")
	reviewCmd.Flags().StringVar(&reviewOut, "out", "", "Write the JSON report to a file (.gz compresses)")
	reviewCmd.Flags().BoolVar(&reviewStdin, "stdin", false, "Read newline-separated changed files from stdin")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	start := time.Now()

	root, err := resolveWorkspace()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	logger := newLogger(reviewFormat, cfg)

	depthName := reviewDepth
	if depthName == "" {
		depthName = cfg.Crawl.DefaultDepth
	}
	depth, err := review.ParseDepth(depthName)
	if err != nil {
		return criterrors.New(criterrors.DepthInvalid, "invalid --depth", err)
	}

	changedFiles, err := collectChangedFiles(args)
	if err != nil {
		return err
	}

	maxFiles := reviewMaxFiles
	if maxFiles <= 0 {
		maxFiles = cfg.Crawl.MaxFiles
	}

	analyzer, err := analyze.NewAnalyzer(root, cfg.Analyzer)
	if err != nil {
		return criterrors.New(criterrors.RulesInvalid, "cannot load analyzer rules", err)
	}

	crawler := crawl.NewCrawler(root, cfg.Crawl.ExtraIgnores, logger)
	orchestrator := review.NewOrchestrator(crawler, analyzer, maxFiles, logger)

	report := orchestrator.ReviewPR(changedFiles, depth)

	output, err := FormatResponse(report, OutputFormat(reviewFormat))
	if err != nil {
		return criterrors.New(criterrors.FormatInvalid, "invalid --format", err)
	}
	fmt.Println(output)

	if reviewOut != "" {
		if err := writeReport(report, reviewOut); err != nil {
			return criterrors.New(criterrors.ReportWriteFailed, "cannot write report", err)
		}
	}

	logger.Debug("Review command completed", map[string]interface{}{
		"duration": time.Since(start).Milliseconds(),
	})
	return nil
}

// collectChangedFiles merges positional arguments with stdin input when
// --stdin is set. Blank lines are skipped.
func collectChangedFiles(args []string) ([]string, error) {
	files := append([]string{}, args...)

	if reviewStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				files = append(files, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	return files, nil
}

// writeReport exports the report as JSON; a .gz suffix selects gzip.
func writeReport(report *review.CodeReviewReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}

	_, err = f.Write(data)
	return err
}
