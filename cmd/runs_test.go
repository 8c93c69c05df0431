// File: cmd/runs_test.go
package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/mocks"
	"github.com/WebVOWL/horned-owl-serializer/internal/store"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

func TestRunsCmd(t *testing.T) {
	t.Run("lists runs", func(t *testing.T) {
		repo := new(mocks.MockRepository)
		provider := new(mocks.MockStoreProvider)
		provider.On("Create", mock.Anything, mock.Anything).Return(repo, nil, nil)

		id := uuid.New()
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.On("ListRuns", mock.Anything, 5).Return([]store.RunSummary{
			{ID: id, Source: "pizza.ofn", Ontology: "http://example.org/test#pizza", CreatedAt: created},
		}, nil)

		out, err := executeCommand(t, provider, "runs", "-n", "5")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "ID"))
		assert.Contains(t, lines[1], id.String())
		assert.Contains(t, lines[1], "2024-03-01T12:00:00Z")
		assert.Contains(t, lines[1], "pizza.ofn")
		repo.AssertExpectations(t)
	})

	t.Run("prints one stored graph", func(t *testing.T) {
		repo := new(mocks.MockRepository)
		provider := new(mocks.MockStoreProvider)
		cleaned := false
		provider.On("Create", mock.Anything, mock.Anything).Return(repo, func() { cleaned = true }, nil)

		id := uuid.New()
		stored := export.Graph{
			Source:      "pizza.ofn",
			Nodes:       []vowl.Node{{Kind: vowl.NodeClass, Index: 0}},
			Edges:       []vowl.Edge{},
			Identifiers: []vowl.Entry{{ID: "http://e.org/A", Index: 0}},
		}
		repo.On("LoadRun", mock.Anything, id).Return(store.Run{ID: id, Graph: stored}, nil)

		out, err := executeCommand(t, provider, "runs", id.String())
		require.NoError(t, err)
		assert.True(t, cleaned)

		g, err := export.Read(strings.NewReader(out), false)
		require.NoError(t, err)
		assert.Equal(t, stored, g)
	})

	t.Run("unknown run", func(t *testing.T) {
		repo := new(mocks.MockRepository)
		provider := new(mocks.MockStoreProvider)
		provider.On("Create", mock.Anything, mock.Anything).Return(repo, nil, nil)
		id := uuid.New()
		repo.On("LoadRun", mock.Anything, id).Return(store.Run{}, store.ErrRunNotFound)

		_, err := executeCommand(t, provider, "runs", id.String())
		assert.ErrorIs(t, err, store.ErrRunNotFound)
	})

	t.Run("malformed run ID is rejected before connecting", func(t *testing.T) {
		provider := new(mocks.MockStoreProvider)
		_, err := executeCommand(t, provider, "runs", "not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid run ID")
		provider.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRunRuns_ProviderError(t *testing.T) {
	provider := new(mocks.MockStoreProvider)
	provider.On("Create", mock.Anything, mock.Anything).Return(nil, nil, errNoDatabaseURL)

	err := runRuns(context.Background(), config.NewDefaultConfig(), provider, "", 20, new(bytes.Buffer))
	assert.ErrorIs(t, err, errNoDatabaseURL)
}

func TestDefaultStoreProvider_RequiresURL(t *testing.T) {
	_, _, err := NewStoreProvider().Create(context.Background(), config.NewDefaultConfig())
	assert.ErrorIs(t, err, errNoDatabaseURL)
}
