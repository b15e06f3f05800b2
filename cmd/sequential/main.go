// Sequential shortest-path solver, the single-machine baseline used to
// validate the distributed engine.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/distributed-dijkstra/pkg/dijkstra"
	"github.com/distributed-dijkstra/pkg/graphio"
)

func usage() {
	fmt.Println("Sequential Dijkstra - baseline shortest path finder")
	fmt.Println()
	fmt.Printf("Usage: %s <graph_file> <source> <destination> [--astar]\n", os.Args[0])
	fmt.Println()
	fmt.Println("  graph_file   path to graph data file")
	fmt.Println("  source       source node id")
	fmt.Println("  destination  destination node id")
	fmt.Println("  --astar      order the search by the Euclidean heuristic")
}

func main() {
	if len(os.Args) < 4 {
		usage()
		os.Exit(1)
	}

	graphFile := os.Args[1]
	source, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid source %q\n", os.Args[2])
		os.Exit(1)
	}
	destination, err := strconv.Atoi(os.Args[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid destination %q\n", os.Args[3])
		os.Exit(1)
	}
	useAStar := len(os.Args) >= 5 && os.Args[4] == "--astar"

	g, err := graphio.Load(graphFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load graph: %v\n", err)
		os.Exit(1)
	}

	algorithm := "standard Dijkstra"
	if useAStar {
		algorithm = "Dijkstra + A* heuristic"
	}

	fmt.Println("===========================================")
	fmt.Println("Sequential Dijkstra")
	fmt.Println("===========================================")
	fmt.Printf("Nodes:       %d\n", g.NodeCount())
	fmt.Printf("Edges:       %d\n", g.EdgeCount())
	fmt.Printf("Source:      %d\n", source)
	fmt.Printf("Destination: %d\n", destination)
	fmt.Printf("Algorithm:   %s\n", algorithm)
	fmt.Println("===========================================")

	var result dijkstra.PathResult
	if useAStar {
		result, err = dijkstra.ShortestPathAStar(g, source, destination)
	} else {
		result, err = dijkstra.ShortestPath(g, source, destination)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if result.Found {
		fmt.Println("Path found!")
		fmt.Printf("Distance:    %g\n", result.Distance)
		fmt.Printf("Path length: %d nodes\n", len(result.Path))
		fmt.Print("Path:        ")
		for i, node := range result.Path {
			if i > 0 {
				fmt.Print(" -> ")
			}
			fmt.Print(node)
		}
		fmt.Println()
	} else {
		fmt.Println("No path found!")
	}
	fmt.Printf("Execution time: %v\n", result.Elapsed)
}
