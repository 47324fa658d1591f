package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexa/internal/diagfmt"
	"lexa/internal/driver"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] path",
	Short: "Analyze a Mini-C file or directory",
	Long: `Analyze runs the full lexical pipeline: it tokenizes the source, builds the
lexicographically ordered symbol table, and emits the program internal form.
A directory argument analyzes every *.mc file in it, each with its own table.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "", "output format (pretty|json)")
	analyzeCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	analyzeCmd.Flags().Int("jobs", 0, "number of parallel workers for directories (0 = GOMAXPROCS)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// Манифест даёт значения по умолчанию; явные флаги всегда сильнее
	manifest, haveManifest, err := loadManifest(".")
	if err != nil {
		return err
	}
	if format == "" {
		format = "pretty"
		if haveManifest && manifest.Config.Output.Format != "" {
			format = manifest.Config.Output.Format
		}
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	if !cmd.Flags().Changed("cache") && haveManifest {
		useCache = manifest.Config.Analyze.Cache
	}
	if !cmd.Root().PersistentFlags().Changed("color") && haveManifest && manifest.Config.Output.Color != "" {
		_ = cmd.Root().PersistentFlags().Set("color", manifest.Config.Output.Color)
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && haveManifest && manifest.Config.Analyze.MaxDiagnostics > 0 {
		maxDiagnostics = manifest.Config.Analyze.MaxDiagnostics
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return analyzeDir(cmd, path, format, maxDiagnostics, jobs)
	}
	return analyzeFile(cmd, path, format, maxDiagnostics, useCache)
}

func analyzeFile(cmd *cobra.Command, path, format string, maxDiagnostics int, useCache bool) error {
	var (
		res *driver.AnalysisResult
		err error
	)
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("lexa")
		if cacheErr != nil {
			return fmt.Errorf("failed to open cache: %w", cacheErr)
		}
		res, _, err = driver.AnalyzeCached(path, maxDiagnostics, cache)
	} else {
		res, err = driver.Analyze(path, maxDiagnostics)
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")

	if err != nil {
		var invalidErr *driver.InvalidTokenError
		if errors.As(err, &invalidErr) && res != nil {
			opts := diagfmt.PrettyOpts{
				Color:   useColor(colorFlag, os.Stderr),
				Context: 2,
			}
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		}
		return err
	}

	printTimings(cmd, res)

	switch format {
	case "json":
		return diagfmt.FormatAnalysisJSON(os.Stdout, res.File.Path, res.Symbols, res.PIF)
	default:
		opts := diagfmt.PrettyOpts{Color: useColor(colorFlag, os.Stdout)}
		return diagfmt.FormatAnalysisPretty(os.Stdout, res.File.Path, res.Symbols, res.PIF, opts)
	}
}

func analyzeDir(cmd *cobra.Command, dir, format string, maxDiagnostics, jobs int) error {
	fileSet, results, err := driver.AnalyzeDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return err
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	failed := 0

	for _, res := range results {
		if res.Err != nil {
			failed++
			opts := diagfmt.PrettyOpts{
				Color:   useColor(colorFlag, os.Stderr),
				Context: 2,
			}
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, opts)
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		switch format {
		case "json":
			if err := diagfmt.FormatAnalysisJSON(os.Stdout, res.Path, res.Symbols, res.PIF); err != nil {
				return err
			}
		default:
			opts := diagfmt.PrettyOpts{Color: useColor(colorFlag, os.Stdout)}
			if err := diagfmt.FormatAnalysisPretty(os.Stdout, res.Path, res.Symbols, res.PIF, opts); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// printTimings выводит отчёт таймера, если запрошен флаг --timings
func printTimings(cmd *cobra.Command, res *driver.AnalysisResult) {
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !showTimings || quiet || res.Timing == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "timings:\n")
	for _, p := range res.Timing.Phases {
		fmt.Fprintf(os.Stderr, "  %-12s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(os.Stderr, "  // %s", p.Note)
		}
		fmt.Fprintln(os.Stderr)
	}
	fmt.Fprintf(os.Stderr, "  %-12s %7.2f ms\n", "total", res.Timing.TotalMS)
}
