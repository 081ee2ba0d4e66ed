// SPDX-License-Identifier: MIT

// Package graphkit is a small toolkit for experimenting with simple
// undirected graphs built from degree sequences.
//
// One run of the graphkit command goes through:
//
//   - builder:      draw a random degree sequence, realize it with
//     Havel–Hakimi, overlay random integer weights;
//   - eulerian:     classify by odd-degree count and extract a trail with a
//     post-order, explicit-stack walk;
//   - dijkstra:     single-source shortest distances, dense array form;
//   - prim_kruskal: minimum spanning tree (Prim) and forest (Kruskal).
//
// Supporting packages:
//
//	adjacency/ — Adjacency interface with Dense (n×n) and Sparse (map) stores
//	bfs/       — breadth-first search and connected components
//	pipeline/  — orchestration of one run and its Report
//	cli/       — cobra command, YAML config, interactive prompts
//
// Library packages return sentinel errors and never log; only pipeline and
// cli talk to logrus.
package graphkit
