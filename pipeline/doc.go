// SPDX-License-Identifier: MIT

// Package pipeline runs one end-to-end graphkit session:
//
//  1. draw a random degree sequence,
//  2. realize it with Havel–Hakimi (a non-graphical sequence ends the run
//     with Report.Realized == false and a nil error),
//  3. classify the graph and, when it is Eulerian, extract and verify a
//     trail on a clone,
//  4. assign random weights to the realized graph,
//  5. compute shortest distances from the configured source,
//  6. build a minimum spanning tree.
//
// The logger travels on the context (WithLogger / Logger). Library packages
// never log; this package reports stage boundaries at Info and Debug.
package pipeline
