// File: cmd/cmd_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
	"github.com/WebVOWL/horned-owl-serializer/internal/mocks"
	"github.com/WebVOWL/horned-owl-serializer/internal/observability"
)

const testNS = "http://example.org/test#"

var (
	pizzaOFN = filepath.Join("..", "internal", "parser", "testdata", "pizza.ofn")
	pizzaOWX = filepath.Join("..", "internal", "parser", "testdata", "pizza.owx")
)

func TestMain(m *testing.M) {
	// Claim the global logger first so commands under test stay quiet.
	observability.Initialize(config.LoggerConfig{Level: "fatal", Format: "console", ServiceName: "test"}, zapcore.AddSync(&bytes.Buffer{}))
	os.Exit(m.Run())
}

// resetForTest clears package state and points --config at an empty file so
// no config on the developer machine leaks in.
func resetForTest(t *testing.T) string {
	t.Helper()
	cfgFile = ""
	osExit = os.Exit
	return createTempConfig(t, "")
}

// createTempConfig writes content to a YAML file under t.TempDir().
func createTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horned-owl-serializer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCommand runs the full command tree, including config loading.
func executeCommand(t *testing.T, provider storeProvider, args ...string) (string, error) {
	t.Helper()
	configPath := resetForTest(t)
	if provider == nil {
		provider = new(mocks.MockStoreProvider)
	}

	root := newRootCmd(provider)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// writeOntology stores a small OFN document under name in a temp dir.
func writeOntology(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// -- Test Cases --

func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := executeCommand(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "horned-owl-serializer version "+Version)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "horned-owl-serializer "+Version)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := executeCommand(t, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "reads OWL 2 ontologies")
	assert.Contains(t, out, "extract")
	assert.Contains(t, out, "neighbors")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	resetForTest(t)
	configPath := createTempConfig(t, "extract:\n  max_depth: -1\n")

	root := newRootCmd(new(mocks.MockStoreProvider))
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--config", configPath, "entities", pizzaOFN})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load or validate config")
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	resetForTest(t)
	root := newRootCmd(new(mocks.MockStoreProvider))
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "entities", pizzaOFN})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize configuration")
}

func TestRequiredArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"extract without files", []string{"extract"}},
		{"entities without file", []string{"entities"}},
		{"neighbors without iri", []string{"neighbors", pizzaOFN}},
		{"runs with two ids", []string{"runs", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, nil, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestGetConfigFromContext(t *testing.T) {
	_, err := getConfigFromContext(context.Background())
	assert.EqualError(t, err, "configuration not found in context")

	cfg := config.NewDefaultConfig()
	got, err := getConfigFromContext(context.WithValue(context.Background(), configKey, config.Interface(cfg)))
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}

func TestEntitiesCmd(t *testing.T) {
	t.Run("distinct IRIs", func(t *testing.T) {
		out, err := executeCommand(t, nil, "entities", pizzaOFN)
		require.NoError(t, err)
		assert.Contains(t, out, testNS+"pizza\n")
		assert.Contains(t, out, testNS+"Margherita\n")
		assert.Contains(t, out, testNS+"hasTopping\n")
		assert.Equal(t, 1, bytes.Count([]byte(out), []byte(testNS+"Margherita\n")), "IRIs are listed once")
	})

	t.Run("with kinds", func(t *testing.T) {
		out, err := executeCommand(t, nil, "entities", "--kinds", pizzaOWX)
		require.NoError(t, err)
		assert.Contains(t, out, "class\t"+testNS+"Pizza")
		assert.Contains(t, out, "objectProperty\t"+testNS+"hasTopping")
		assert.Contains(t, out, "namedIndividual\t"+testNS+"m1")
	})

	t.Run("unparseable file", func(t *testing.T) {
		path := writeOntology(t, "bad.ofn", "Ontology(")
		_, err := executeCommand(t, nil, "entities", path)
		assert.Error(t, err)
	})
}

func TestNeighborsCmd(t *testing.T) {
	t.Run("class edges with closure", func(t *testing.T) {
		out, err := executeCommand(t, nil, "neighbors", "--closure", pizzaOFN, testNS+"Margherita")
		require.NoError(t, err)
		assert.Contains(t, out, "subclassOf\t"+testNS+"Pizza\n")
		assert.Contains(t, out, "superclass\t"+testNS+"Pizza\n")
		assert.NotContains(t, out, "subclass\t")
	})

	t.Run("object property assertion", func(t *testing.T) {
		out, err := executeCommand(t, nil, "neighbors", pizzaOFN, testNS+"m1")
		require.NoError(t, err)
		assert.Equal(t, "objectProperty\t"+testNS+"hasTopping\t"+testNS+"tomato\n", out)
	})

	t.Run("unknown IRI", func(t *testing.T) {
		_, err := executeCommand(t, nil, "neighbors", pizzaOFN, testNS+"Calzone")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not mention")
	})
}
