package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/export"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/logger"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/store"
)

var rankCmd = &cobra.Command{
	Use:   "rank [resume files...]",
	Short: "Score and rank resumes against one job description",
	Long:  "Score every resume with the selected engine and print a ranked table. One resume failing to extract or score never aborts the batch.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRank,
}

var (
	rankConfigFile string
	rankJobFile    string
	rankJobText    string
	rankEngine     string
	rankModel      string
	rankEmbedModel string
	rankOutJSON    string
	rankOutCSV     string
	rankAPIKey     string
	rankDBURL      string
	rankWorkers    int
	rankVerbose    bool
	rankJSONLogs   bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to JSON config file")
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to job description file")
	rankCmd.Flags().StringVar(&rankJobText, "job-text", "", "Inline job description text")
	rankCmd.Flags().StringVarP(&rankEngine, "engine", "e", string(scoring.Heuristic), "Scoring engine: heuristic, rubric, semantic, or structured")
	rankCmd.Flags().StringVar(&rankModel, "model", "", "Override the standard-tier model")
	rankCmd.Flags().StringVar(&rankEmbedModel, "embedding-model", "", "Embedding model for the semantic engine")
	rankCmd.Flags().StringVarP(&rankOutJSON, "out", "o", "", "Write the full ranking result JSON to this path")
	rankCmd.Flags().StringVar(&rankOutCSV, "csv", "", "Write the candidate table CSV to this path")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rankCmd.Flags().StringVar(&rankDBURL, "db-url", "", "PostgreSQL URL to persist the run (overrides DATABASE_URL env var)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Score candidates in parallel with this many workers")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print parsed job description and per-candidate detail")
	rankCmd.Flags().BoolVar(&rankJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	cfg := config.Config{
		Job:            rankJobFile,
		JobText:        rankJobText,
		Resumes:        args,
		Engine:         rankEngine,
		Model:          rankModel,
		EmbeddingModel: rankEmbedModel,
		OutJSON:        rankOutJSON,
		OutCSV:         rankOutCSV,
		APIKey:         rankAPIKey,
		DatabaseURL:    rankDBURL,
		Workers:        rankWorkers,
		Verbose:        rankVerbose,
		JSONLogs:       rankJSONLogs,
	}
	if rankConfigFile != "" {
		fileCfg, err := config.LoadConfig(rankConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync failure is not actionable

	jdText, err := loadJobText(cfg)
	if err != nil {
		return err
	}
	if len(cfg.Resumes) == 0 {
		return fmt.Errorf("at least one resume file is required")
	}

	engineName, err := scoring.ParseName(cfg.Engine)
	if err != nil {
		return err
	}

	ctx := context.Background()
	apiKey := resolveAPIKey(cfg.APIKey)

	// The heuristic engine needs no backend; everything else degrades
	// gracefully without one except semantic, which refuses to start.
	var client llm.Client
	if apiKey != "" {
		llmCfg := llm.DefaultConfig()
		if cfg.Model != "" {
			llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
		}
		client, err = llm.NewClient(ctx, llmCfg, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close() //nolint:errcheck // best-effort cleanup
	}

	deps := scoring.Deps{Client: client}
	if engineName == scoring.Semantic {
		if apiKey == "" {
			return fmt.Errorf("semantic engine requires an API key (set GEMINI_API_KEY or use --api-key)")
		}
		embedModel := cfg.EmbeddingModel
		if embedModel == "" {
			embedModel = llm.DefaultEmbeddingModel
		}
		embedder, err := llm.SharedEmbedder(ctx, apiKey, embedModel)
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		deps.Embedder = embedder
		deps.Semantic = semanticParams(cfg)
	}

	engine, err := scoring.New(engineName, deps)
	if err != nil {
		return err
	}

	pipeline := ranking.NewPipeline(engine, client,
		ranking.WithLogger(log),
		ranking.WithWorkers(cfg.Workers))
	result, jdRaw, err := pipeline.Rank(ctx, jdText, cfg.Resumes)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobDescription(result.JobDescription)
		for i := range result.Candidates {
			printer.PrintCandidateDetail(&result.Candidates[i])
		}
	}
	printer.PrintRankingResult(result)

	if cfg.OutJSON != "" {
		if err := export.WriteRankingJSON(cfg.OutJSON, result, jdRaw); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", cfg.OutJSON)
	}
	if cfg.OutCSV != "" {
		if err := export.WriteRankingCSV(cfg.OutCSV, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", cfg.OutCSV)
	}

	dbURL := cfg.DatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL != "" {
		st, err := store.Connect(ctx, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
		runID, err := st.SaveRankingRun(ctx, string(engineName), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved ranking run %s\n", runID)
	}

	return nil
}

func loadJobText(cfg config.Config) (string, error) {
	if cfg.JobText != "" {
		return cfg.JobText, nil
	}
	if cfg.Job == "" {
		return "", fmt.Errorf("a job description is required (--job or --job-text)")
	}
	text, err := ingestion.ExtractText(cfg.Job)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("job description file %s is empty", cfg.Job)
	}
	return text, nil
}

func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

func semanticParams(cfg config.Config) scoring.SemanticParams {
	params := scoring.DefaultSemanticParams()
	if cfg.SimilarityWeight > 0 {
		params.SimilarityWeight = cfg.SimilarityWeight
	}
	if cfg.CoverageWeight > 0 {
		params.CoverageWeight = cfg.CoverageWeight
	}
	if cfg.StrongHitThreshold > 0 {
		params.StrongHitThreshold = cfg.StrongHitThreshold
	}
	return params
}
