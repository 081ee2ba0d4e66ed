// SPDX-License-Identifier: MIT

// Package eulerian classifies undirected graphs by the parity of their vertex
// degrees and extracts Eulerian trails.
//
// Classification (Classify / Analyze):
//
//	0 odd-degree vertices  → Circuit
//	2 odd-degree vertices  → Path
//	anything else          → None
//
// Degree counts non-zero cells per row, independent of weight. By the
// handshake lemma the odd count is always even, so None means 4, 6, ... odd
// vertices. Parity alone does not guarantee a trail: the edges must also lie
// in one component, which Analyze reports separately via package bfs.
//
// Extraction (Trail):
//
//	From the start vertex, take the lowest-id remaining neighbour, delete the
//	edge in both directions and continue from there; a vertex is emitted only
//	once all of its edges are gone (post-order). The emitted sequence is the
//	trail read backwards relative to visitation. The walk uses an explicit
//	stack, so depth is bounded by heap memory rather than the goroutine stack.
//
//	Trail does not look for bridges. On a connected graph with 0 odd
//	vertices, or with 2 when starting at one of them, the result is a valid
//	trail of length |E|+1. Any other input may yield a malformed sequence;
//	Verify detects that against an untouched copy of the graph.
//
// Trail DESTROYS the edge set of the graph it is given. Clone first if the
// graph is needed afterwards.
package eulerian
