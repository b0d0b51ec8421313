/*
Package sqlite persists simulation runs and their monthly results.

PURPOSE:
  The engine itself is pure - it takes a configuration and returns a
  result sequence. This package is the external collaborator that
  keeps those sequences: one row per run, one row per simulated month.

KEY TABLES:
  runs:            Run metadata and the scenario document that
                   produced it
  monthly_results: The flat per-month output table

PRECISION:
  Decimal quantities are stored as TEXT and parsed back through
  shopspring/decimal, so a persisted run reads back value-identical
  to the sequence the engine emitted.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety; SQLite is opened in WAL mode so
  readers don't block each other.

USAGE:
  store, err := sqlite.New("./data/capacity.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - ../../engine: MonthlyResult, the row source
  - ../../api: Handlers that call into this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/capacity-engine/engine"
)

// Run is the stored metadata of one simulation run.
type Run struct {
	ID         string
	ScenarioID string
	Name       string
	CreatedAt  time.Time

	// SpecJSON is the scenario document (or ad-hoc request) that
	// produced the run, kept verbatim for reproducibility.
	SpecJSON string
}

// Store persists runs and monthly results in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		scenario_id TEXT NOT NULL,
		name TEXT NOT NULL,
		spec_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_scenario
		ON runs(scenario_id);
	CREATE INDEX IF NOT EXISTS idx_runs_created
		ON runs(created_at DESC);

	CREATE TABLE IF NOT EXISTS monthly_results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		month INTEGER NOT NULL,
		accounts INTEGER NOT NULL,
		headcount INTEGER NOT NULL,
		new_hires INTEGER NOT NULL,
		cohorts_json TEXT NOT NULL,
		required_hours TEXT NOT NULL,
		capacity_hours TEXT NOT NULL,
		attainment TEXT NOT NULL,
		utilization TEXT NOT NULL,
		quality TEXT NOT NULL,
		revenue TEXT NOT NULL,
		cost TEXT NOT NULL,
		margin TEXT NOT NULL,
		cumulative_revenue TEXT NOT NULL,
		cumulative_cost TEXT NOT NULL,
		sla_unmet BOOLEAN NOT NULL,
		PRIMARY KEY (run_id, month)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RUN PERSISTENCE
// =============================================================================

// SaveRun stores a run and its full result sequence atomically.
func (s *Store) SaveRun(ctx context.Context, run Run, results []engine.MonthlyResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, scenario_id, name, spec_json, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.ScenarioID, run.Name, run.SpecJSON, run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO monthly_results (
			run_id, month, accounts, headcount, new_hires, cohorts_json,
			required_hours, capacity_hours, attainment, utilization, quality,
			revenue, cost, margin, cumulative_revenue, cumulative_cost, sla_unmet
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare result insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		cohorts, err := json.Marshal(r.Cohorts)
		if err != nil {
			return fmt.Errorf("failed to encode cohorts for month %d: %w", r.Month, err)
		}
		_, err = stmt.ExecContext(ctx,
			run.ID, r.Month, r.Accounts, r.Headcount, r.NewHires, string(cohorts),
			r.RequiredHours.String(), r.CapacityHours.String(),
			r.Attainment.String(), r.Utilization.String(), r.Quality.String(),
			r.Revenue.String(), r.Cost.String(), r.Margin.String(),
			r.CumulativeRevenue.String(), r.CumulativeCost.String(),
			r.SLAUnmet,
		)
		if err != nil {
			return fmt.Errorf("failed to insert result for month %d: %w", r.Month, err)
		}
	}

	return tx.Commit()
}

// GetRun returns a stored run, or sql.ErrNoRows if it doesn't exist.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario_id, name, spec_json, created_at
		FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario_id, name, spec_json, created_at
		FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Results returns the stored result sequence for a run, in month order.
func (s *Store) Results(ctx context.Context, runID string) ([]engine.MonthlyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT month, accounts, headcount, new_hires, cohorts_json,
		       required_hours, capacity_hours, attainment, utilization, quality,
		       revenue, cost, margin, cumulative_revenue, cumulative_cost, sla_unmet
		FROM monthly_results WHERE run_id = ? ORDER BY month`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []engine.MonthlyResult
	for rows.Next() {
		var (
			r           engine.MonthlyResult
			cohortsJSON string
			decimals    [10]string
		)
		err := rows.Scan(
			&r.Month, &r.Accounts, &r.Headcount, &r.NewHires, &cohortsJSON,
			&decimals[0], &decimals[1], &decimals[2], &decimals[3], &decimals[4],
			&decimals[5], &decimals[6], &decimals[7], &decimals[8], &decimals[9],
			&r.SLAUnmet,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cohortsJSON), &r.Cohorts); err != nil {
			return nil, fmt.Errorf("failed to decode cohorts: %w", err)
		}

		fields := []*decimal.Decimal{
			&r.RequiredHours, &r.CapacityHours, &r.Attainment, &r.Utilization,
			&r.Quality, &r.Revenue, &r.Cost, &r.Margin,
			&r.CumulativeRevenue, &r.CumulativeCost,
		}
		for i, field := range fields {
			d, err := decimal.NewFromString(decimals[i])
			if err != nil {
				return nil, fmt.Errorf("failed to parse stored decimal %q: %w", decimals[i], err)
			}
			*field = d
		}

		results = append(results, r)
	}
	return results, rows.Err()
}

// Reset clears all stored runs and results.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM monthly_results; DELETE FROM runs;`)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt string
	if err := row.Scan(&run.ID, &run.ScenarioID, &run.Name, &run.SpecJSON, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = t
	return &run, nil
}
