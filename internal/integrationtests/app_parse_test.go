package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/behaviortreego/internal/app"
	"github.com/vk/behaviortreego/internal/testutil"
)

const coreManifest = `
node "Sequence" {
  category = "parent"
}

node "Wait" {
  category = "leaf"

  param "duration" {
    type = number
    eval = true
  }
}

node "Log" {
  category = "leaf"

  param "message" {
    type = string
    eval = true
  }
}
`

// writeFixture lays out a manifests directory and a tree file under one
// temporary root and returns their paths.
func writeFixture(t *testing.T, tree string) (manifestsDir, treePath string) {
	t.Helper()
	tmpDir := t.TempDir()

	manifestsDir = filepath.Join(tmpDir, "modules")
	require.NoError(t, os.Mkdir(manifestsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(manifestsDir, "core.hcl"), []byte(coreManifest), 0644))

	treePath = filepath.Join(tmpDir, "main.xml")
	require.NoError(t, os.WriteFile(treePath, []byte(tree), 0644))
	return manifestsDir, treePath
}

func TestApp_ParsesTreeEndToEnd(t *testing.T) {
	t.Parallel()

	manifestsDir, treePath := writeFixture(t, `
<Sequence>
  <Wait duration="${random(1, 5)}"/>
  <Log message="on patrol"/>
</Sequence>`)

	out := &testutil.SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		TreePath:      treePath,
		ManifestsPath: manifestsDir,
		LogFormat:     "text",
		LogLevel:      "debug",
	})
	require.NoError(t, err)

	a := app.NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background()))

	logOutput := out.String()
	require.Contains(t, logOutput, "Behavior tree parsed.")
	require.Contains(t, logOutput, "nodes=3")
}

func TestApp_WritesCanonicalForm(t *testing.T) {
	t.Parallel()

	manifestsDir, treePath := writeFixture(t, `
<Sequence>
  <Log message="hello"/>
</Sequence>`)
	canonicalPath := filepath.Join(t.TempDir(), "canonical.xml")

	out := &testutil.SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		TreePath:      treePath,
		ManifestsPath: manifestsDir,
		CanonicalOut:  canonicalPath,
		LogFormat:     "text",
		LogLevel:      "info",
	})
	require.NoError(t, err)

	a := app.NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background()))

	canonical, err := os.ReadFile(canonicalPath)
	require.NoError(t, err)
	require.Contains(t, string(canonical), `<Log message="hello">`)
}

func TestApp_ParseFailureCarriesDiagnostics(t *testing.T) {
	t.Parallel()

	manifestsDir, treePath := writeFixture(t, `
<Sequence>
  <Wait/>
</Sequence>`)

	out := &testutil.SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		TreePath:      treePath,
		ManifestsPath: manifestsDir,
		LogFormat:     "text",
		LogLevel:      "info",
	})
	require.NoError(t, err)

	a := app.NewApp(out, cfg)
	err = a.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "main.xml:3")
	require.Contains(t, err.Error(), `"Wait"`)
	require.Contains(t, err.Error(), `"duration"`)
}
