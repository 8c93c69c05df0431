// internal/store/store_test.go
package store

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

// flexibleSQLMatcher creates a regex that is insensitive to whitespace for more robust SQL mock testing.
func flexibleSQLMatcher(sql string) string {
	trimmed := strings.TrimSpace(sql)
	return regexp.MustCompile(`\s+`).ReplaceAllString(regexp.QuoteMeta(trimmed), `\s+`)
}

func newMockStore(t *testing.T, logger *zap.Logger) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	mockPool.ExpectPing()
	s, err := New(context.Background(), mockPool, logger)
	require.NoError(t, err)
	return s, mockPool
}

func sampleGraph() export.Graph {
	return export.Graph{
		Source: "pizza.ofn",
		Nodes: []vowl.Node{
			{Kind: vowl.NodeClass, Index: 0},
			{Kind: vowl.NodeEquivalentClass, Index: 1, Group: []vowl.Index{1, 2}},
		},
		Edges: []vowl.Edge{{Kind: vowl.EdgeSubclassOf, From: 1, To: 0}},
		Identifiers: []vowl.Entry{
			{ID: "http://e.org/A", Index: 0},
			{ID: "http://e.org/B", Index: 1},
			{ID: "http://e.org/C", Index: 2},
		},
		Diagnostics: []string{"vowl: SubClassOf: composite"},
	}
}

// -- Test Cases --

func TestNewStore(t *testing.T) {
	t.Run("should return error if ping fails", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		pingErr := errors.New("database unavailable")
		mockPool.ExpectPing().WillReturnError(pingErr)

		_, err = New(context.Background(), mockPool, zap.NewNop())
		require.Error(t, err)
		assert.ErrorIs(t, err, pingErr, "Error from ping should be propagated")
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestEnsureSchema(t *testing.T) {
	s, mockPool := newMockStore(t, zap.NewNop())
	mockPool.ExpectExec(flexibleSQLMatcher(Schema)).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSaveRun(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist a full run in one transaction", func(t *testing.T) {
		observedZapCore, observedLogs := observer.New(zapcore.InfoLevel)
		s, mockPool := newMockStore(t, zap.New(observedZapCore))

		runID := uuid.New()
		g := sampleGraph()

		mockPool.ExpectBegin()
		mockPool.ExpectExec(flexibleSQLMatcher(sqlInsertRun)).
			WithArgs(runID, "pizza.ofn", "http://e.org/pizza", pgxmock.AnyArg(), []byte(`["vowl: SubClassOf: composite"]`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCopyFrom(pgx.Identifier{"run_identifiers"}, identifierColumns).WillReturnResult(3)
		mockPool.ExpectCopyFrom(pgx.Identifier{"run_nodes"}, nodeColumns).WillReturnResult(2)
		mockPool.ExpectCopyFrom(pgx.Identifier{"run_edges"}, edgeColumns).WillReturnResult(1)
		mockPool.ExpectCommit()
		// Expect Commit AND the subsequent Rollback (which returns ErrTxClosed)
		mockPool.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		local := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
		saved, err := s.SaveRun(ctx, Run{ID: runID, Source: "pizza.ofn", Ontology: "http://e.org/pizza", CreatedAt: local, Graph: g})
		require.NoError(t, err)

		assert.Equal(t, runID, saved.ID)
		assert.Equal(t, time.UTC, saved.CreatedAt.Location())
		assert.True(t, saved.CreatedAt.Equal(local))
		assert.NoError(t, mockPool.ExpectationsWereMet())

		entries := observedLogs.FilterMessage("Persisted extraction run").All()
		require.Len(t, entries, 1)
		assert.Equal(t, runID.String(), entries[0].ContextMap()["run_id"])
		assert.Empty(t, observedLogs.FilterLevelExact(zapcore.ErrorLevel).All(), "Expected no errors logged on successful commit")
	})

	t.Run("should assign an ID and skip empty copies", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())

		mockPool.ExpectBegin()
		mockPool.ExpectExec(flexibleSQLMatcher(sqlInsertRun)).
			WithArgs(pgxmock.AnyArg(), "empty.ofn", "", pgxmock.AnyArg(), []byte(`[]`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCommit()
		mockPool.ExpectRollback().WillReturnError(pgx.ErrTxClosed)

		saved, err := s.SaveRun(ctx, Run{Source: "empty.ofn"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("should handle transaction begin failure", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())
		beginErr := errors.New("too many connections")
		mockPool.ExpectBegin().WillReturnError(beginErr)

		_, err := s.SaveRun(ctx, Run{Source: "x.ofn"})
		assert.ErrorIs(t, err, beginErr)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("should rollback if a copy fails", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())
		copyErr := errors.New("disk full")

		mockPool.ExpectBegin()
		mockPool.ExpectExec(flexibleSQLMatcher(sqlInsertRun)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCopyFrom(pgx.Identifier{"run_identifiers"}, identifierColumns).WillReturnError(copyErr)
		mockPool.ExpectRollback()

		_, err := s.SaveRun(ctx, Run{Source: "pizza.ofn", Graph: sampleGraph()})
		assert.ErrorIs(t, err, copyErr)
		assert.ErrorContains(t, err, "run_identifiers")
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("should reject a short copy", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())

		mockPool.ExpectBegin()
		mockPool.ExpectExec(flexibleSQLMatcher(sqlInsertRun)).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockPool.ExpectCopyFrom(pgx.Identifier{"run_identifiers"}, identifierColumns).WillReturnResult(2)
		mockPool.ExpectRollback()

		_, err := s.SaveRun(ctx, Run{Source: "pizza.ofn", Graph: sampleGraph()})
		assert.ErrorContains(t, err, "mismatch in copied run_identifiers count")
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestLoadRun(t *testing.T) {
	ctx := context.Background()

	t.Run("should rebuild the graph", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())
		runID := uuid.New()
		created := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectRun)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"source", "ontology_iri", "created_at", "diagnostics"}).
				AddRow("pizza.ofn", "http://e.org/pizza", created, []byte(`["vowl: SubClassOf: composite"]`)))
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectIdentifiers)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"idx", "iri"}).
				AddRow(int64(0), "http://e.org/A").
				AddRow(int64(1), "http://e.org/B").
				AddRow(int64(2), "http://e.org/C"))
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectNodes)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"kind", "idx", "grp"}).
				AddRow("class", int64(0), []int64(nil)).
				AddRow("equivalentClass", int64(1), []int64{1, 2}))
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectEdges)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"kind", "from_idx", "predicate_idx", "to_idx"}).
				AddRow("subclassOf", int64(1), int64(0), int64(0)))

		run, err := s.LoadRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "http://e.org/pizza", run.Ontology)
		assert.True(t, run.CreatedAt.Equal(created))
		assert.Equal(t, sampleGraph(), run.Graph)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("should report an unknown run", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())
		runID := uuid.New()
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectRun)).WithArgs(runID).WillReturnError(pgx.ErrNoRows)

		_, err := s.LoadRun(ctx, runID)
		assert.ErrorIs(t, err, ErrRunNotFound)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("should reject an unknown node kind", func(t *testing.T) {
		s, mockPool := newMockStore(t, zap.NewNop())
		runID := uuid.New()

		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectRun)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"source", "ontology_iri", "created_at", "diagnostics"}).
				AddRow("x.ofn", "", time.Now(), []byte(`[]`)))
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectIdentifiers)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"idx", "iri"}))
		mockPool.ExpectQuery(flexibleSQLMatcher(sqlSelectNodes)).WithArgs(runID).
			WillReturnRows(pgxmock.NewRows([]string{"kind", "idx", "grp"}).AddRow("hexagon", int64(0), []int64(nil)))

		_, err := s.LoadRun(ctx, runID)
		assert.ErrorContains(t, err, "unknown node kind")
	})
}

func TestListRuns(t *testing.T) {
	s, mockPool := newMockStore(t, zap.NewNop())
	id := uuid.New()
	created := time.Now().UTC()

	mockPool.ExpectQuery(flexibleSQLMatcher(sqlListRuns)).WithArgs(20).
		WillReturnRows(pgxmock.NewRows([]string{"id", "source", "ontology_iri", "created_at"}).
			AddRow(id.String(), "pizza.ofn", "http://e.org/pizza", created))

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "pizza.ofn", runs[0].Source)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
