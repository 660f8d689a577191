package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/polysum/internal/config"
	"github.com/jonathan/polysum/internal/ingestion"
	"github.com/jonathan/polysum/internal/observability"
	"github.com/jonathan/polysum/internal/pipeline"
	"github.com/jonathan/polysum/internal/types"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text...]",
	Short: "Summarize text from arguments, a file, or stdin",
	Long: `Runs the summarization pipeline: normalize -> reason -> verify/simplify/critique -> refine.

Text is taken from the positional arguments, from --file, or from stdin when neither is given.
Configuration can be loaded from a JSON or YAML file using --config. Command-line flags override config file values.`,
	RunE: runSummarize,
}

var (
	summarizeFile       string
	summarizeConfigPath string
	summarizeDebug      bool
	summarizeJSON       bool
	summarizeVerbose    bool
	summarizeMinChars   int
	summarizeMaxChars   int
)

func init() {
	summarizeCmd.Flags().StringVar(&summarizeConfigPath, "config", "", "Path to config file (.json, .yaml or .yml)")
	summarizeCmd.Flags().StringVarP(&summarizeFile, "file", "f", "", "Path to a text or HTML file to summarize")
	summarizeCmd.Flags().BoolVar(&summarizeDebug, "debug", false, "Include agent results in JSON output")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "Print the response as JSON")
	summarizeCmd.Flags().BoolVarP(&summarizeVerbose, "verbose", "v", false, "Print detailed agent output")
	summarizeCmd.Flags().IntVar(&summarizeMinChars, "min-chars", 0, "Minimum input length in characters (default 100)")
	summarizeCmd.Flags().IntVar(&summarizeMaxChars, "max-chars", 0, "Maximum input length in characters (default 50000)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Step 1: Load config file and environment
	cfg, err := loadConfig(summarizeConfigPath)
	if err != nil {
		return err
	}

	// Step 2: Apply CLI overrides; only flags that were explicitly set
	if cmd.Flags().Changed("debug") {
		cfg.Debug = summarizeDebug
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = summarizeVerbose
	}
	if cmd.Flags().Changed("min-chars") {
		cfg.MinChars = summarizeMinChars
	}
	if cmd.Flags().Changed("max-chars") {
		cfg.MaxChars = summarizeMaxChars
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	req := types.SummarizeRequest{Text: text, Debug: cfg.Debug}
	if err := req.ValidateLength(cfg.MinChars, cfg.MaxChars); err != nil {
		return err
	}

	start := time.Now()
	result, err := pipeline.Run(context.Background(), text, pipeline.Options{
		Verbose: cfg.Verbose && !summarizeJSON,
		Out:     out,
	})
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}
	stats := pipeline.ComputeStats(text, result.Summary, time.Since(start))

	if summarizeJSON {
		resp := pipeline.BuildResponse(result, stats, cfg.Debug)
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	_, _ = fmt.Fprintln(out, result.Summary)
	if cfg.Verbose {
		observability.NewPrinter(out).PrintStats(&stats)
		return nil
	}
	_, _ = fmt.Fprintf(out, "\n%d words -> %d words (%d%% compression) in %dms\n",
		stats.OriginalWords, stats.SummaryWords, stats.CompressionPercent, stats.LatencyMS)
	return nil
}

// readInput resolves the text to summarize: positional args, then --file, then stdin
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && summarizeFile != "" {
		return "", fmt.Errorf("text arguments and --file are mutually exclusive")
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if summarizeFile != "" {
		text, _, err := ingestion.IngestFromFile(summarizeFile)
		return text, err
	}
	text, _, err := ingestion.IngestFromReader(stdin, "stdin")
	return text, err
}
