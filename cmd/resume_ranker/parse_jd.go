package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/parsing"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd <job description file>",
	Short: "Parse a job description into structured JSON",
	Long:  "Extract text from a job description file and parse it into the structured form used by the scoring engines. Without an API key the raw text passes through unparsed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseJD,
}

var (
	parseJDOut    string
	parseJDAPIKey string
	parseJDRaw    bool
)

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDOut, "out", "o", "", "Path to output JSON file (default stdout)")
	parseJDCmd.Flags().StringVar(&parseJDAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseJDCmd.Flags().BoolVar(&parseJDRaw, "raw", false, "Emit the untyped decoder output instead of the structured form")

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(_ *cobra.Command, args []string) error {
	jdText, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()

	var client llm.Client
	if apiKey := resolveAPIKey(parseJDAPIKey); apiKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck // best-effort cleanup
	}

	jd, jdRaw, err := parsing.ParseJobDescription(ctx, client, jdText)
	if err != nil {
		return err
	}

	var out any = jd
	if parseJDRaw {
		out = jdRaw
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseJDOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(parseJDOut, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", parseJDOut)
	return nil
}
