// Package store provides optional PostgreSQL persistence for ranking runs.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the ranking tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ranking_runs (
			id UUID PRIMARY KEY,
			engine TEXT NOT NULL,
			jd_title TEXT,
			jd_company TEXT,
			jd JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS ranking_candidates (
			run_id UUID NOT NULL REFERENCES ranking_runs(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			resume_path TEXT NOT NULL,
			name TEXT,
			alignment_score DOUBLE PRECISION NOT NULL,
			keyword_coverage DOUBLE PRECISION NOT NULL,
			detail JSONB,
			PRIMARY KEY (run_id, rank)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create ranking schema: %w", err)
	}
	return nil
}

// SaveRankingRun persists one ranking run and all its candidate rows, and
// returns the generated run ID.
func (s *Store) SaveRankingRun(ctx context.Context, engine string, result *types.RankingResult) (uuid.UUID, error) {
	if result == nil {
		return uuid.Nil, fmt.Errorf("nil ranking result")
	}

	jdBytes, err := json.Marshal(result.JobDescription)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job description: %w", err)
	}

	runID := uuid.New()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	title, company := "", ""
	if result.JobDescription != nil {
		title = result.JobDescription.Title
		company = result.JobDescription.Company
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO ranking_runs (id, engine, jd_title, jd_company, jd)
		 VALUES ($1, $2, $3, $4, $5)`,
		runID, engine, title, company, jdBytes,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save ranking run: %w", err)
	}

	for _, c := range result.Candidates {
		detail, err := json.Marshal(map[string]any{
			"overall_explanation": c.OverallExplanation,
			"per_requirement":     c.PerRequirement,
			"evidence":            c.Evidence,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal candidate detail: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO ranking_candidates (run_id, rank, resume_path, name, alignment_score, keyword_coverage, detail)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			runID, c.Rank, c.ResumePath, c.Name, c.AlignmentScore, c.KeywordCoverage, detail,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to save candidate %s: %w", c.ResumePath, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit ranking run: %w", err)
	}
	return runID, nil
}

// GetRankingRun loads the stored job description and candidate table for a
// previous run.
func (s *Store) GetRankingRun(ctx context.Context, runID uuid.UUID) (*types.RankingResult, error) {
	var jdBytes []byte
	err := s.pool.QueryRow(ctx,
		`SELECT jd FROM ranking_runs WHERE id = $1`, runID,
	).Scan(&jdBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ranking run: %w", err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal(jdBytes, &jd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job description: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT rank, resume_path, name, alignment_score, keyword_coverage
		 FROM ranking_candidates WHERE run_id = $1 ORDER BY rank`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking candidates: %w", err)
	}
	defer rows.Close()

	result := &types.RankingResult{JobDescription: &jd}
	for rows.Next() {
		var c types.CandidateScore
		if err := rows.Scan(&c.Rank, &c.ResumePath, &c.Name, &c.AlignmentScore, &c.KeywordCoverage); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		result.Candidates = append(result.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}
	return result, nil
}
