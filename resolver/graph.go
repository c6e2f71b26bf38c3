/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution over the canonical
// tree: lazy lookup, cycle detection and broken-reference scanning.
package resolver

import (
	"fmt"
	"sort"

	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// Graph is a directed graph of token reference dependencies, keyed by
// dot-separated token path.
type Graph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildGraph scans every Reference in the theme into an adjacency map.
func BuildGraph(theme *token.ThemeFile) *Graph {
	graph := &Graph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	theme.WalkTokens(func(_, _, path string, t *token.Token) {
		graph.nodes[path] = true
		ref, ok := t.Reference()
		if !ok {
			return
		}
		target := ref.Ref
		graph.nodes[target] = true
		graph.dependencies[path] = append(graph.dependencies[path], target)
		graph.dependents[target] = append(graph.dependents[target], path)
	})

	return graph
}

// Dependencies returns the paths the given token references.
func (g *Graph) Dependencies(path string) []string {
	if deps, ok := g.dependencies[path]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the paths that reference the given token.
func (g *Graph) Dependents(path string) []string {
	if deps, ok := g.dependents[path]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular reference.
func (g *Graph) HasCycle() bool {
	return len(g.FindCycles()) > 0
}

// FindCycles returns every reference cycle, each reported exactly once. A
// node flags a cycle only when it reappears in the current DFS stack, not
// merely in the global visited set: convergent but acyclic "diamond"
// references are legal. All members of a reported cycle are marked checked
// so the same cycle is not reported again from a different start node.
func (g *Graph) FindCycles() [][]string {
	visited := make(map[string]bool)
	var cycles [][]string

	for _, node := range g.sortedNodes() {
		if visited[node] {
			continue
		}
		recStack := make(map[string]bool)
		g.findCycleDFS(node, visited, recStack, nil, &cycles)
	}
	return cycles
}

func (g *Graph) findCycleDFS(node string, visited, recStack map[string]bool, path []string, cycles *[][]string) {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		cycle := append([]string(nil), path[cycleStart:]...)
		*cycles = append(*cycles, cycle)
		// Members are checked; the same cycle reached from another start
		// node must not be reported twice.
		for _, member := range cycle {
			visited[member] = true
		}
		return
	}
	if visited[node] {
		return
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		g.findCycleDFS(dep, visited, recStack, path, cycles)
	}

	recStack[node] = false
}

// TopologicalSort returns paths in dependency order (dependencies first).
// Returns an error if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	if cycles := g.FindCycles(); len(cycles) > 0 {
		return nil, fmt.Errorf("%w: %v", source.ErrCircularReference, cycles[0])
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.sortedNodes() {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}
	return result, nil
}

func (g *Graph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true
	for _, dep := range g.dependencies[node] {
		if !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}
	*stack = append(*stack, node)
}

func (g *Graph) sortedNodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}
