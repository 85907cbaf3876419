package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/export"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/logger"
	"github.com/jonathan/resume-ranker/internal/tailoring"
	"github.com/jonathan/resume-ranker/internal/types"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor <resume file>",
	Short: "Rewrite one resume toward a job description",
	Long:  "Parse the resume and job description, rewrite the resume as Markdown targeted at the posting, and score the rewrite with the deterministic engine.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTailor,
}

var (
	tailorJobFile   string
	tailorJobText   string
	tailorOutJSON   string
	tailorOutMD     string
	tailorAPIKey    string
	tailorTone      string
	tailorLength    string
	tailorRole      string
	tailorSeniority string
	tailorVerbose   bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job description file")
	tailorCmd.Flags().StringVar(&tailorJobText, "job-text", "", "Inline job description text")
	tailorCmd.Flags().StringVarP(&tailorOutJSON, "out", "o", "", "Write the full tailoring artifacts JSON to this path")
	tailorCmd.Flags().StringVar(&tailorOutMD, "out-md", "", "Write the tailored resume Markdown to this path")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	tailorCmd.Flags().StringVar(&tailorTone, "tone", "", "Writing tone: concise, confident, or impact-focused")
	tailorCmd.Flags().StringVar(&tailorLength, "length", "", "Target length: 1page or 2pages")
	tailorCmd.Flags().StringVar(&tailorRole, "role", "", "Target role title")
	tailorCmd.Flags().StringVar(&tailorSeniority, "seniority", "", "Target seniority level")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, args []string) error {
	resumePath := args[0]

	jdText := tailorJobText
	if jdText == "" {
		if tailorJobFile == "" {
			return fmt.Errorf("a job description is required (--job or --job-text)")
		}
		text, err := ingestion.ExtractText(tailorJobFile)
		if err != nil {
			return err
		}
		jdText = text
	}

	apiKey := resolveAPIKey(tailorAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	log, err := logger.New(false, tailorVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync failure is not actionable

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck // best-effort cleanup

	opts := types.DefaultTailoringOptions()
	if tailorTone != "" {
		opts.Tone = tailorTone
	}
	if tailorLength != "" {
		opts.Length = tailorLength
	}
	opts.TargetRole = tailorRole
	opts.TargetSeniority = tailorSeniority

	artifacts, err := tailoring.Run(ctx, client, log, resumePath, jdText, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Tailored resume scores: alignment=%.3f coverage=%.3f\n",
		artifacts.Alignment, artifacts.KeywordCoverage)

	if tailorOutMD != "" {
		if err := os.WriteFile(tailorOutMD, []byte(artifacts.TailoredMarkdown+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write tailored Markdown: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", tailorOutMD)
	}
	if tailorOutJSON != "" {
		if err := export.WriteTailoringJSON(tailorOutJSON, artifacts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", tailorOutJSON)
	}
	if tailorOutMD == "" && tailorOutJSON == "" {
		fmt.Fprintln(os.Stdout, artifacts.TailoredMarkdown)
	}

	return nil
}
