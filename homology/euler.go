// SPDX-License-Identifier: MIT
// Package: lvtopo/homology
//
// euler.go - f-vector, Euler characteristic and 1-skeleton components.

package homology

import (
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/simplicial"
)

// FVector returns the number of simplices per dimension, index d holding
// the count of d-simplices. An empty complex yields an empty slice.
func FVector(k *simplicial.Complex) []int {
	f := make([]int, k.Dimension()+1)
	k.Each(func(_ simplicial.ID, s simplex.Simplex) bool {
		f[s.Dim()]++
		return true
	})

	return f
}

// EulerCharacteristic returns Σ (-1)^d · f_d.
func EulerCharacteristic(k *simplicial.Complex) int {
	chi := 0
	for d, n := range FVector(k) {
		if d%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}

	return chi
}

// Components returns the number of connected components of k, found by a
// breadth-first search over its 1-skeleton.
func Components(k *simplicial.Complex) int {
	// 1. Adjacency over the vertices, keyed by vertex label.
	adj := make(map[simplex.Vertex][]simplex.Vertex)
	for _, v := range k.Range(0) {
		adj[v.Vertex(0)] = nil
	}
	for _, e := range k.Range(1) {
		a, b := e.Vertex(0), e.Vertex(1)
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	// 2. One BFS per unvisited vertex, in complex order for determinism.
	visited := make(map[simplex.Vertex]bool, len(adj))
	queue := make([]simplex.Vertex, 0, len(adj))
	components := 0
	for _, v := range k.Range(0) {
		root := v.Vertex(0)
		if visited[root] {
			continue
		}
		components++
		visited[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[cur] {
				if !visited[nbr] {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
	}

	return components
}
