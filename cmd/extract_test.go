// File: cmd/extract_test.go
package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/export"
	"github.com/WebVOWL/horned-owl-serializer/internal/mocks"
	"github.com/WebVOWL/horned-owl-serializer/internal/store"
	"github.com/WebVOWL/horned-owl-serializer/internal/vowl"
)

const tinyOntology = `Prefix(:=<http://example.org/tiny#>)
Ontology(<http://example.org/tiny>
    Declaration(Class(:A))
    Declaration(Class(:B))
    SubClassOf(:B :A)
)
`

func TestApplyExtractFlagOverrides(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg config.Interface)
	}{
		{
			name: "No flags keeps config",
			args: []string{},
			assert: func(t *testing.T, cfg config.Interface) {
				assert.Equal(t, config.NewDefaultConfig(), cfg)
			},
		},
		{
			name: "Output flags",
			args: []string{"-o", "out.json.br", "--compress", "--indent"},
			assert: func(t *testing.T, cfg config.Interface) {
				assert.Equal(t, "out.json.br", cfg.Output().Path)
				assert.True(t, cfg.Output().Compress)
				assert.True(t, cfg.Output().Indent)
			},
		},
		{
			name: "Extraction flags",
			args: []string{"--sort", "--max-depth", "7", "-j", "3", "--persist"},
			assert: func(t *testing.T, cfg config.Interface) {
				assert.True(t, cfg.Extract().CanonicalOrder)
				assert.Equal(t, 7, cfg.Extract().MaxDepth)
				assert.Equal(t, 3, cfg.Pipeline().Workers)
				assert.True(t, cfg.Database().Persist)
			},
		},
		{
			name: "Negative max depth is ignored",
			args: []string{"--max-depth", "-2"},
			assert: func(t *testing.T, cfg config.Interface) {
				assert.Equal(t, config.NewDefaultConfig().Extract().MaxDepth, cfg.Extract().MaxDepth)
			},
		},
		{
			name: "Explicit false overrides config",
			args: []string{"--sort=false"},
			assert: func(t *testing.T, cfg config.Interface) {
				assert.False(t, cfg.Extract().CanonicalOrder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			if tt.name == "Explicit false overrides config" {
				cfg.SetExtractCanonicalOrder(true)
			}
			extractCmd := newExtractCmd(nil)
			require.NoError(t, extractCmd.ParseFlags(tt.args))

			applyExtractFlagOverrides(extractCmd, cfg)
			tt.assert(t, cfg)
		})
	}
}

func TestGraphFileName(t *testing.T) {
	assert.Equal(t, "pizza.json", graphFileName("/data/pizza.ofn", false))
	assert.Equal(t, "pizza.json.br", graphFileName("pizza.owx", true))
	assert.Equal(t, "noext.json", graphFileName("noext", false))
}

func TestExtractCmd_Stdout(t *testing.T) {
	out, err := executeCommand(t, nil, "extract", pizzaOFN)
	require.NoError(t, err)

	g, err := export.Read(strings.NewReader(out), false)
	require.NoError(t, err)
	assert.Equal(t, pizzaOFN, g.Source)
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
	require.Len(t, g.Diagnostics, 1)
	assert.Contains(t, g.Diagnostics[0], "SubClassOf")
}

func TestExtractCmd_CompressedFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "pizza.json.br")
	out, err := executeCommand(t, nil, "extract", "--output", dest, pizzaOWX)
	require.NoError(t, err)
	assert.Empty(t, out, "nothing goes to stdout when --output is set")

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()

	// The .br extension alone turns compression on.
	g, err := export.Read(f, true)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 3)
}

func TestExtractCmd_Directory(t *testing.T) {
	tiny := writeOntology(t, "tiny.ofn", tinyOntology)
	dir := filepath.Join(t.TempDir(), "graphs")

	_, err := executeCommand(t, nil, "extract", "-o", dir, "--indent", "-j", "2", pizzaOFN, tiny)
	require.NoError(t, err)

	for _, name := range []string{"pizza.json", "tiny.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "\n  \"nodes\"", "indented output")
	}

	data, err := os.ReadFile(filepath.Join(dir, "tiny.json"))
	require.NoError(t, err)
	g, err := export.Read(bytes.NewReader(data), false)
	require.NoError(t, err)
	assert.Equal(t, []vowl.Edge{{Kind: vowl.EdgeSubclassOf, From: 1, To: 0}}, g.Edges)
}

func TestExtractCmd_PartialFailure(t *testing.T) {
	tiny := writeOntology(t, "tiny.ofn", tinyOntology)
	missing := filepath.Join(t.TempDir(), "missing.ofn")

	out, err := executeCommand(t, nil, "extract", tiny, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, out, `"source":"`+tiny+`"`, "the good file is still written")
}

func TestExtractCmd_IndexLimit(t *testing.T) {
	tiny := writeOntology(t, "tiny.ofn", tinyOntology)
	configPath := createTempConfig(t, "extract:\n  index_limit: 1\n")

	root := newRootCmd(new(mocks.MockStoreProvider))
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--config", configPath, "extract", tiny})

	err := root.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, vowl.ErrIndexExhausted)
}

func TestRunExtract_Persist(t *testing.T) {
	ctx := context.Background()
	tiny := writeOntology(t, "tiny.ofn", tinyOntology)

	t.Run("stores each run", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.SetDatabasePersist(true)

		repo := new(mocks.MockRepository)
		provider := new(mocks.MockStoreProvider)
		cleaned := false
		provider.On("Create", mock.Anything, cfg).Return(repo, func() { cleaned = true }, nil)
		repo.On("SaveRun", mock.Anything, mock.MatchedBy(func(r store.Run) bool {
			return r.Source == tiny && r.Ontology == "http://example.org/tiny" && len(r.Graph.Edges) == 1
		})).Return(store.Run{ID: uuid.New()}, nil).Once()

		var out bytes.Buffer
		err := runExtract(ctx, zap.NewNop(), cfg, []string{tiny}, provider, &out)
		require.NoError(t, err)
		assert.True(t, cleaned, "cleanup must run")
		assert.NotEmpty(t, out.String())
		provider.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("provider failure aborts before extraction", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.SetDatabasePersist(true)

		provider := new(mocks.MockStoreProvider)
		provider.On("Create", mock.Anything, cfg).Return(nil, nil, errors.New("connection refused"))

		var out bytes.Buffer
		err := runExtract(ctx, zap.NewNop(), cfg, []string{tiny}, provider, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to initialize store")
		assert.Empty(t, out.String())
	})

	t.Run("save failure is reported per file", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.SetDatabasePersist(true)

		repo := new(mocks.MockRepository)
		provider := new(mocks.MockStoreProvider)
		provider.On("Create", mock.Anything, cfg).Return(repo, nil, nil)
		saveErr := errors.New("unique violation")
		repo.On("SaveRun", mock.Anything, mock.Anything).Return(store.Run{}, saveErr)

		err := runExtract(ctx, zap.NewNop(), cfg, []string{tiny}, provider, new(bytes.Buffer))
		assert.ErrorIs(t, err, saveErr)
		assert.Contains(t, err.Error(), tiny)
	})

	t.Run("persistence off never touches the provider", func(t *testing.T) {
		provider := new(mocks.MockStoreProvider)
		err := runExtract(ctx, zap.NewNop(), config.NewDefaultConfig(), []string{tiny}, provider, new(bytes.Buffer))
		require.NoError(t, err)
		provider.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRunExtract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runExtract(ctx, zap.NewNop(), config.NewDefaultConfig(), []string{pizzaOFN}, nil, new(bytes.Buffer))
	assert.ErrorIs(t, err, context.Canceled)
}
