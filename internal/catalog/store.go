// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog maintains a persistent SQLite full-text index over the
// survey records, for CLI queries that should rank by relevance instead of
// running the in-memory substring predicate.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

const defaultMaxResults = 20

// Store manages the catalog index database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at cfg.DBPath, creating the
// schema when missing.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			paper TEXT,
			title TEXT,
			authors TEXT,
			year INTEGER,
			scenario_domain TEXT,
			swarm_type TEXT,
			human_role TEXT,
			sa1 TEXT,
			sa2 TEXT,
			sa3 TEXT,
			training_included TEXT,
			training_type TEXT,
			model_based_support TEXT,
			interface_visualization TEXT,
			evaluation_metrics_raw TEXT,
			evaluation_metrics TEXT,
			key_contribution TEXT,
			main_limitation TEXT,
			relevance_to_phd TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_scenario ON papers(scenario_domain)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS papers_fts USING fts5(id UNINDEXED, body)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Rebuild replaces the index contents with the given records and reports
// progress to w. The rebuild is transactional: on failure the previous
// index survives intact.
func (s *Store) Rebuild(ctx context.Context, records []types.Record, w io.Writer) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM papers`, `DELETE FROM papers_fts`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("clearing index: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, paper, title, authors, year, scenario_domain,
			swarm_type, human_role, sa1, sa2, sa3, training_included,
			training_type, model_based_support, interface_visualization,
			evaluation_metrics_raw, evaluation_metrics, key_contribution,
			main_limitation, relevance_to_phd)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	insertFTS, err := tx.PrepareContext(ctx,
		`INSERT INTO papers_fts (id, body) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing FTS insert: %w", err)
	}
	defer insertFTS.Close()

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		metricsJSON, _ := json.Marshal(rec.EvaluationMetrics)
		if _, err := insert.ExecContext(ctx,
			rec.ID, rec.Paper, rec.Title, rec.Authors, rec.Year,
			rec.ScenarioDomain, rec.SwarmType, rec.HumanRole,
			string(rec.SA1), string(rec.SA2), string(rec.SA3),
			string(rec.TrainingIncluded), rec.TrainingType,
			rec.ModelBasedSupport, rec.InterfaceVisualization,
			rec.EvaluationMetricsRaw, string(metricsJSON),
			rec.KeyContribution, rec.MainLimitation, rec.RelevanceToPhD,
		); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", rec.ID, err)
		}

		if _, err := insertFTS.ExecContext(ctx, rec.ID, rec.SearchText()); err != nil {
			return 0, fmt.Errorf("indexing %s: %w", rec.ID, err)
		}
		fmt.Fprintf(w, "indexed %s\n", rec.ID)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	fmt.Fprintf(w, "\n%d records indexed\n", len(records))
	return len(records), nil
}

// Search runs an FTS5 match over the indexed records and returns them in
// relevance order. A limit of zero uses the store default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Record, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.paper, p.title, p.authors, p.year, p.scenario_domain,
			p.swarm_type, p.human_role, p.sa1, p.sa2, p.sa3,
			p.training_included, p.training_type, p.model_based_support,
			p.interface_visualization, p.evaluation_metrics_raw,
			p.evaluation_metrics, p.key_contribution, p.main_limitation,
			p.relevance_to_phd
		 FROM papers_fts f
		 JOIN papers p ON p.id = f.id
		 WHERE papers_fts MATCH ?
		 ORDER BY f.rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []types.Record
	for rows.Next() {
		var (
			rec                  types.Record
			sa1, sa2, sa3, train string
			metricsJSON          sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &rec.Paper, &rec.Title, &rec.Authors, &rec.Year,
			&rec.ScenarioDomain, &rec.SwarmType, &rec.HumanRole,
			&sa1, &sa2, &sa3, &train, &rec.TrainingType,
			&rec.ModelBasedSupport, &rec.InterfaceVisualization,
			&rec.EvaluationMetricsRaw, &metricsJSON,
			&rec.KeyContribution, &rec.MainLimitation, &rec.RelevanceToPhD,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		rec.SA1 = types.TriState(sa1)
		rec.SA2 = types.TriState(sa2)
		rec.SA3 = types.TriState(sa3)
		rec.TrainingIncluded = types.TriState(train)
		if metricsJSON.Valid {
			json.Unmarshal([]byte(metricsJSON.String), &rec.EvaluationMetrics)
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// Count returns the number of indexed records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
