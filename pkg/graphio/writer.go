package graphio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/distributed-dijkstra/pkg/graph"
)

// Save writes the graph to path in the flat edge-list format, creating
// parent directories as needed. The header records the live edge counter.
func Save(path string, g *graph.Graph) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	if _, err := fmt.Fprintf(w, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for from := 0; from < g.NodeCount(); from++ {
		for _, e := range g.Adjacency(from) {
			line := strconv.Itoa(from) + " " + strconv.Itoa(e.To) + " " +
				strconv.FormatFloat(e.Weight, 'g', -1, 64) + "\n"
			if _, err := w.WriteString(line); err != nil {
				return fmt.Errorf("failed to write edge %d->%d: %w", from, e.To, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush graph file: %w", err)
	}
	return nil
}
