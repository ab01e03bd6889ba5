package wiring_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodal/internal/app"
	_ "go.trai.ch/nodal/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of the
	// interface used in Dep[T]. Every port lives in the shared ports package, so
	// the analysis cannot tell the nodes apart.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestComponentsResolve(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() {
		_ = os.Chdir(wd)
	}()

	components, _, err := graft.ExecuteFor[*app.Components](context.Background(), graft.WithCache(graft.NewMemoryCache()))
	require.NoError(t, err)
	require.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
	assert.NotNil(t, components.Metrics)
	assert.Len(t, components.App.Descriptors(), 6)
}

func TestWiredSpansReachLogProcessor(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() {
		_ = os.Chdir(wd)
	}()

	project := `version: "1"
nodes:
  seed:  {type: Number, params: {value: 21}}
  twice: {type: ScriptScale, params: {factor: 2}, inputs: {in: "seed::out"}}
`
	require.NoError(t, os.WriteFile("nodal.yaml", []byte(project), 0o644))

	ctx := context.Background()
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.WithCache(graft.NewMemoryCache()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = components.Telemetry.Shutdown(ctx) })

	log, ok := components.Logger.(interface {
		SetOutput(w io.Writer)
		SetLevel(level slog.Level)
	})
	require.True(t, ok)
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(slog.LevelDebug)

	require.NoError(t, components.App.Load(ctx, "nodal.yaml"))
	results, err := components.App.Evaluate(ctx, []string{"twice::out"})
	require.NoError(t, err)
	assert.Equal(t, 42.0, results[0].Value)

	out := buf.String()
	assert.Contains(t, out, "span=resolver.require_object")
	assert.Contains(t, out, "span=resolver.apply_node")
	assert.Contains(t, out, "span=bridge.pull_from_native")
}
