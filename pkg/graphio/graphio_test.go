package graphio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distributed-dijkstra/pkg/graph"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "3 3\n0 1 2.5\n1 2 1\n2 0 4\n")

	g, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	require.Len(t, g.Adjacency(0), 1)
	assert.Equal(t, graph.Edge{To: 1, Weight: 2.5}, g.Adjacency(0)[0])
}

func TestLoadHeaderEdgeCountIsAdvisory(t *testing.T) {
	// Header claims 10 edges, the body holds 2.
	path := writeFile(t, "4 10\n0 1 1\n1 2 1\n")

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadDropsOutOfRangeEdges(t *testing.T) {
	path := writeFile(t, "2 3\n0 1 1\n0 5 1\n7 1 1\n")

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeFile(t, "2 1\n\n0 1 3\n\n")

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, ""))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bogus\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "2 1\n0 x 1\n"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := graph.New(3)
	g.AddBidirectionalEdge(0, 1, 1.5)
	g.AddEdge(1, 2, 2.25)

	path := filepath.Join(t.TempDir(), "out", "graph.txt")
	require.NoError(t, Save(path, g))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, g.NodeCount(), loaded.NodeCount())
	assert.Equal(t, g.EdgeCount(), loaded.EdgeCount())
	for id := 0; id < g.NodeCount(); id++ {
		assert.Equal(t, g.Adjacency(id), loaded.Adjacency(id))
	}
}
