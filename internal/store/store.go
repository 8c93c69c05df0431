// File: internal/store/store.go

// Package store persists extraction runs to PostgreSQL.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("extraction run not found")

// DBPool is an interface that abstracts the pgxpool.Pool to allow for mocking in tests.
type DBPool interface {
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Schema creates the tables SaveRun writes to. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS extraction_runs (
    id           UUID PRIMARY KEY,
    source       TEXT NOT NULL,
    ontology_iri TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMPTZ NOT NULL,
    diagnostics  JSONB NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS run_identifiers (
    run_id UUID NOT NULL REFERENCES extraction_runs (id) ON DELETE CASCADE,
    idx    BIGINT NOT NULL,
    iri    TEXT NOT NULL,
    PRIMARY KEY (run_id, idx)
);
CREATE TABLE IF NOT EXISTS run_nodes (
    run_id   UUID NOT NULL REFERENCES extraction_runs (id) ON DELETE CASCADE,
    position INT NOT NULL,
    kind     TEXT NOT NULL,
    idx      BIGINT NOT NULL,
    grp      BIGINT[],
    PRIMARY KEY (run_id, position)
);
CREATE TABLE IF NOT EXISTS run_edges (
    run_id        UUID NOT NULL REFERENCES extraction_runs (id) ON DELETE CASCADE,
    position      INT NOT NULL,
    kind          TEXT NOT NULL,
    from_idx      BIGINT NOT NULL,
    predicate_idx BIGINT NOT NULL,
    to_idx        BIGINT NOT NULL,
    PRIMARY KEY (run_id, position)
);`

var (
	identifierColumns = []string{"run_id", "idx", "iri"}
	nodeColumns       = []string{"run_id", "position", "kind", "idx", "grp"}
	edgeColumns       = []string{"run_id", "position", "kind", "from_idx", "predicate_idx", "to_idx"}
)

// Run is one persisted extraction.
type Run struct {
	ID        uuid.UUID
	Source    string
	Ontology  string
	CreatedAt time.Time
	Graph     export.Graph
}

// RunSummary is a row of ListRuns.
type RunSummary struct {
	ID        uuid.UUID
	Source    string
	Ontology  string
	CreatedAt time.Time
}

// Repository is the run persistence contract consumed by the CLI.
type Repository interface {
	SaveRun(ctx context.Context, run Run) (Run, error)
	LoadRun(ctx context.Context, id uuid.UUID) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}

var _ Repository = (*Store)(nil)

// Store provides a PostgreSQL repository for extraction runs.
type Store struct {
	pool DBPool
	log  *zap.Logger
}

// New creates a new store instance and verifies the connection.
func New(ctx context.Context, pool DBPool, logger *zap.Logger) (*Store, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		pool: pool,
		log:  logger.Named("store"),
	}, nil
}

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRun writes a run and its graph in one transaction. A zero ID is
// replaced by a fresh one and a zero CreatedAt by the current time; the
// stored values are returned.
func (s *Store) SaveRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	diagnostics := run.Graph.Diagnostics
	if diagnostics == nil {
		diagnostics = []string{}
	}
	diagJSON, err := json.Marshal(diagnostics)
	if err != nil {
		return Run{}, fmt.Errorf("failed to encode diagnostics: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Run{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			s.log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	_, err = tx.Exec(ctx, sqlInsertRun, run.ID, run.Source, run.Ontology, run.CreatedAt, diagJSON)
	if err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	if err := s.copyRows(ctx, tx, "run_identifiers", identifierColumns, identifierRows(run.ID, run.Graph.Identifiers)); err != nil {
		return Run{}, err
	}
	if err := s.copyRows(ctx, tx, "run_nodes", nodeColumns, nodeRows(run.ID, run.Graph.Nodes)); err != nil {
		return Run{}, err
	}
	if err := s.copyRows(ctx, tx, "run_edges", edgeColumns, edgeRows(run.ID, run.Graph.Edges)); err != nil {
		return Run{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Run{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.log.Info("Persisted extraction run",
		zap.String("run_id", run.ID.String()),
		zap.String("source", run.Source),
		zap.Int("nodes", len(run.Graph.Nodes)),
		zap.Int("edges", len(run.Graph.Edges)),
	)
	return run, nil
}

const sqlInsertRun = `
        INSERT INTO extraction_runs (id, source, ontology_iri, created_at, diagnostics)
        VALUES ($1, $2, $3, $4, $5);
    `

func (s *Store) copyRows(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", table, err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("mismatch in copied %s count: expected %d, got %d", table, len(rows), n)
	}
	return nil
}

func identifierRows(id uuid.UUID, entries []vowl.Entry) [][]interface{} {
	rows := make([][]interface{}, len(entries))
	for i, e := range entries {
		rows[i] = []interface{}{id, int64(e.Index), e.ID}
	}
	return rows
}

func nodeRows(id uuid.UUID, nodes []vowl.Node) [][]interface{} {
	rows := make([][]interface{}, len(nodes))
	for i, n := range nodes {
		var group []int64
		for _, g := range n.Group {
			group = append(group, int64(g))
		}
		rows[i] = []interface{}{id, i, n.Kind.String(), int64(n.Index), group}
	}
	return rows
}

func edgeRows(id uuid.UUID, edges []vowl.Edge) [][]interface{} {
	rows := make([][]interface{}, len(edges))
	for i, e := range edges {
		rows[i] = []interface{}{id, i, e.Kind.String(), int64(e.From), int64(e.Predicate), int64(e.To)}
	}
	return rows
}

const (
	sqlSelectRun = `
        SELECT source, ontology_iri, created_at, diagnostics
        FROM extraction_runs
        WHERE id = $1;
    `
	sqlSelectIdentifiers = `
        SELECT idx, iri FROM run_identifiers WHERE run_id = $1 ORDER BY idx ASC;
    `
	sqlSelectNodes = `
        SELECT kind, idx, grp FROM run_nodes WHERE run_id = $1 ORDER BY position ASC;
    `
	sqlSelectEdges = `
        SELECT kind, from_idx, predicate_idx, to_idx FROM run_edges WHERE run_id = $1 ORDER BY position ASC;
    `
	sqlListRuns = `
        SELECT id, source, ontology_iri, created_at
        FROM extraction_runs
        ORDER BY created_at DESC
        LIMIT $1;
    `
)

// LoadRun reads a run and its graph back. It returns ErrRunNotFound for an
// unknown ID.
func (s *Store) LoadRun(ctx context.Context, id uuid.UUID) (Run, error) {
	run := Run{ID: id}
	var diagJSON []byte
	err := s.pool.QueryRow(ctx, sqlSelectRun, id).Scan(&run.Source, &run.Ontology, &run.CreatedAt, &diagJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to query run: %w", err)
	}
	run.Graph.Source = run.Source
	if len(diagJSON) > 0 {
		if err := json.Unmarshal(diagJSON, &run.Graph.Diagnostics); err != nil {
			return Run{}, fmt.Errorf("failed to decode diagnostics: %w", err)
		}
	}
	if len(run.Graph.Diagnostics) == 0 {
		run.Graph.Diagnostics = nil
	}

	if run.Graph.Identifiers, err = s.loadIdentifiers(ctx, id); err != nil {
		return Run{}, err
	}
	if run.Graph.Nodes, err = s.loadNodes(ctx, id); err != nil {
		return Run{}, err
	}
	if run.Graph.Edges, err = s.loadEdges(ctx, id); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (s *Store) loadIdentifiers(ctx context.Context, id uuid.UUID) ([]vowl.Entry, error) {
	rows, err := s.pool.Query(ctx, sqlSelectIdentifiers, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query identifiers: %w", err)
	}
	defer rows.Close()

	out := []vowl.Entry{}
	for rows.Next() {
		var idx int64
		var e vowl.Entry
		if err := rows.Scan(&idx, &e.ID); err != nil {
			return nil, fmt.Errorf("failed to scan identifier row: %w", err)
		}
		e.Index = vowl.Index(idx)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return out, nil
}

func (s *Store) loadNodes(ctx context.Context, id uuid.UUID) ([]vowl.Node, error) {
	rows, err := s.pool.Query(ctx, sqlSelectNodes, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	out := []vowl.Node{}
	for rows.Next() {
		var kind string
		var idx int64
		var group []int64
		if err := rows.Scan(&kind, &idx, &group); err != nil {
			return nil, fmt.Errorf("failed to scan node row: %w", err)
		}
		n := vowl.Node{Index: vowl.Index(idx)}
		if err := n.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, err
		}
		for _, g := range group {
			n.Group = append(n.Group, vowl.Index(g))
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return out, nil
}

func (s *Store) loadEdges(ctx context.Context, id uuid.UUID) ([]vowl.Edge, error) {
	rows, err := s.pool.Query(ctx, sqlSelectEdges, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	out := []vowl.Edge{}
	for rows.Next() {
		var kind string
		var from, pred, to int64
		if err := rows.Scan(&kind, &from, &pred, &to); err != nil {
			return nil, fmt.Errorf("failed to scan edge row: %w", err)
		}
		e := vowl.Edge{From: vowl.Index(from), Predicate: vowl.Index(pred), To: vowl.Index(to)}
		if err := e.Kind.UnmarshalText([]byte(kind)); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return out, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx, sqlListRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Source, &r.Ontology, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}
	return runs, nil
}
