// SPDX-License-Identifier: MIT

// Package builder produces graphs for the rest of graphkit: it draws random
// degree sequences, realizes them as simple undirected graphs (Havel–Hakimi),
// and overlays random edge weights on an existing edge set.
//
// All stochastic work flows through a *rand.Rand carried by builderConfig and
// supplied with WithSeed or WithRand, so a fixed seed reproduces every draw.
// There is no package-level random source.
//
// Components:
//
//   - DegreeSequence(n):       n values ~U[0,n-1], sorted non-increasing.
//   - HavelHakimi(seq, a):     realize seq into a zero-initialized Adjacency.
//   - Realize(seq):            HavelHakimi into a freshly allocated Dense.
//   - AssignWeights(a):        weightFn(rng) on every existing edge, symmetric.
//   - IsGraphical(seq):        Erdős–Gallai test, independent of realization.
//
// Realization modes (WithRealizeMode):
//
//	RealizeTracked    — default. Each remaining degree is paired with its
//	                    vertex id and pairs are stable-sorted together, so
//	                    vertex i ends up with exactly seq[i] neighbours.
//	RealizePositional — edges are recorded against post-sort positions.
//	                    Position 0 after the k-th sort is not the same vertex
//	                    as position 0 after the first one, so the realized
//	                    degrees may differ from seq. Kept for parity with
//	                    legacy output.
//
// Errors:
//
//	ErrTooFewVertices    — n < 0.
//	ErrNeedRandSource    — stochastic constructor without WithSeed/WithRand.
//	ErrNotGraphical      — Havel–Hakimi failed (d ≥ n, or a degree went negative).
//	ErrDimensionMismatch — len(seq) differs from the store's vertex count.
//	ErrNilGraph          — nil Adjacency.
//	ErrOptionViolation   — a weight function produced a non-positive weight.
//
// Option constructors panic on meaningless arguments (nil RNG, min > max);
// the algorithms themselves only return errors.
package builder
