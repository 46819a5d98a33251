package graphfile_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/internal/graphfile"
)

const triangleYAML = `
vertices:
  - {id: 0, label: A, x: 0, y: 0}
  - {id: 1, label: B, x: 100, y: 0}
  - {id: 2, x: 50, y: 80}
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 1, to: 2, weight: 3}
  - {from: 0, to: 2, weight: 5}
`

const triangleJSON = `{
  "vertices": [
    {"id": 0, "label": "A", "x": 0, "y": 0},
    {"id": 1, "label": "B", "x": 100, "y": 0},
    {"id": 2, "x": 50, "y": 80}
  ],
  "edges": [
    {"from": 0, "to": 1, "weight": 4},
    {"from": 1, "to": 2, "weight": 3},
    {"from": 0, "to": 2, "weight": 5}
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func checkTriangle(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "A", g.Label(0))
	assert.Equal(t, "2", g.Label(2), "missing labels fall back to the id")
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 3}, g.Edge(1))
	assert.Equal(t, 80.0, g.VertexAt(2).Y)
	assert.NoError(t, core.Validate(g, core.PositiveWeights))
}

func TestLoad_YAMLAndJSON(t *testing.T) {
	for _, tc := range []struct{ name, body string }{
		{"triangle.yaml", triangleYAML},
		{"triangle.yml", triangleYAML},
		{"triangle.json", triangleJSON},
		{"TRIANGLE.JSON", triangleJSON},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphfile.Load(writeFile(t, tc.name, tc.body))
			require.NoError(t, err)
			checkTriangle(t, g)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := graphfile.Load(writeFile(t, "g.toml", triangleYAML))
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "vertices: [ {id: 0, colour: red} ]")
	_, err = graphfile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path, "errors carry the file name")

	_, err = graphfile.Load(writeFile(t, "empty.json", "{}"))
	assert.ErrorIs(t, err, graphfile.ErrNoVertices)

	_, err = graphfile.Load(writeFile(t, "blank.yaml", ""))
	assert.ErrorIs(t, err, graphfile.ErrNoVertices)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader(triangleJSON), graphfile.Format("xml"))
	assert.ErrorIs(t, err, graphfile.ErrUnknownFormat)
}

func TestEncode_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 20)},
		builder.Wheel(6), builder.Path(2),
	)
	require.NoError(t, err)

	for _, format := range []graphfile.Format{graphfile.FormatYAML, graphfile.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, graphfile.Encode(&buf, g, format))
		back, err := graphfile.Decode(&buf, format)
		require.NoError(t, err, format)
		assert.Equal(t, g.Vertices(), back.Vertices(), format)
		assert.Equal(t, g.Edges(), back.Edges(), format)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "g.yaml", triangleYAML)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	loads := make(chan *core.Graph, 4)
	done := make(chan error, 1)
	go func() {
		done <- graphfile.Watch(ctx, path, func(g *core.Graph, err error) {
			if err == nil {
				loads <- g
			}
		})
	}()

	first := <-loads
	assert.Equal(t, 3, first.EdgeCount())

	require.NoError(t, os.WriteFile(path, []byte(`
vertices: [{id: 0, label: A}, {id: 1, label: B}]
edges: [{from: 0, to: 1, weight: 9}]
`), 0o644))

	select {
	case g := <-loads:
		assert.Equal(t, 1, g.EdgeCount())
	case <-ctx.Done():
		t.Fatal("no reload after write")
	}

	cancel()
	assert.NoError(t, <-done)
}
