// Package graphio loads and saves graphs in the flat edge-list text format:
// the first line holds "<nodeCount> <edgeCount>", every following line one
// directed edge as "<from> <to> <weight>". A bidirectional logical edge
// appears as two lines.
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/distributed-dijkstra/pkg/graph"
)

// Load reads a graph from path. The edge count in the header is advisory:
// the loader consumes every data line actually present, so files whose
// header disagrees with their body still load. Edges referencing
// out-of-range nodes are dropped silently by the graph itself.
func Load(path string) (*graph.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, fmt.Errorf("graph file %s is empty", path)
	}

	header := strings.Fields(scanner.Text())
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid header %q: expected node and edge counts", scanner.Text())
	}
	nodeCount, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("invalid node count %q: %w", header[0], err)
	}
	if nodeCount < 0 {
		return nil, fmt.Errorf("negative node count %d", nodeCount)
	}

	g := graph.New(nodeCount)

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		from, to, weight, err := parseEdgeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		g.AddEdge(from, to, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}

	return g, nil
}

func parseEdgeLine(line string) (from, to int, weight float64, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	if from, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid source id %q: %w", fields[0], err)
	}
	if to, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid destination id %q: %w", fields[1], err)
	}
	if weight, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid weight %q: %w", fields[2], err)
	}
	return from, to, weight, nil
}
