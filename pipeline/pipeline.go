// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/eulerian"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// Run executes every stage for cfg. A sequence that cannot be realized is a
// normal outcome: the report comes back with Realized == false and err == nil.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.ResolvedSeed(nil)
	log := Logger(ctx).WithField("seed", seed)
	ctx = WithLogger(ctx, log)
	rng := rand.New(rand.NewSource(seed))

	r := &Report{Seed: seed, Vertices: cfg.Vertices, Source: cfg.Source, RealizeMode: cfg.Realize}

	seq, err := builder.DegreeSequence(cfg.Vertices, builder.WithRand(rng))
	if err != nil {
		return nil, errors.Wrap(err, "generate degree sequence")
	}
	r.Sequence = seq
	r.Graphical = builder.IsGraphical(seq)
	log.WithFields(logrus.Fields{"n": cfg.Vertices, "sequence": seq, "graphical": r.Graphical}).Debug("degree sequence generated")

	g, ok, err := realize(ctx, cfg, r)
	if err != nil || !ok {
		return r, err
	}

	if err = ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "before eulerian analysis")
	}
	if r.Eulerian, err = analyzeEulerian(ctx, cfg, g); err != nil {
		return nil, err
	}

	if err = builder.AssignWeights(g, builder.WithRand(rng), builder.WithUniformWeight(cfg.WeightMin, cfg.WeightMax)); err != nil {
		return nil, errors.Wrap(err, "assign weights")
	}
	r.Graph = adjacency.Edges(g)
	log.WithField("total_weight", adjacency.TotalWeight(g)).Debug("weights assigned")

	if err = ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "before shortest paths")
	}
	if err = shortestPaths(ctx, cfg, g, r); err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "before spanning tree")
	}
	if r.Tree, err = spanningTree(ctx, cfg, g); err != nil {
		return nil, err
	}

	return r, nil
}

// realize allocates the store and runs Havel–Hakimi. ok is false when the
// sequence is not graphical.
func realize(ctx context.Context, cfg Config, r *Report) (adjacency.Adjacency, bool, error) {
	log := Logger(ctx)
	mode, err := builder.ParseRealizeMode(cfg.Realize)
	if err != nil {
		return nil, false, errors.Wrap(err, "realize mode")
	}
	g, err := cfg.newStore()
	if err != nil {
		return nil, false, errors.Wrap(err, "allocate store")
	}

	err = builder.HavelHakimi(r.Sequence, g, builder.WithRealizeMode(mode))
	if errors.Is(err, builder.ErrNotGraphical) {
		r.RealizeError = err.Error()
		log.WithError(err).Info("graph cannot be constructed")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "realize")
	}

	r.Realized = true
	r.Degrees = adjacency.Degrees(g)
	r.Edges = adjacency.EdgeCount(g)
	log.WithFields(logrus.Fields{"store": cfg.Store, "mode": mode, "edges": r.Edges}).Info("graph constructed")

	return g, true, nil
}

// analyzeEulerian classifies g and, when possible, extracts a trail from a
// clone so g keeps its edges for the later stages.
func analyzeEulerian(ctx context.Context, cfg Config, g adjacency.Adjacency) (*EulerianReport, error) {
	an, err := eulerian.Analyze(ctx, g)
	if err != nil {
		return nil, errors.Wrap(err, "eulerian analysis")
	}
	er := &EulerianReport{
		Kind:        an.Kind.String(),
		OddVertices: an.OddVertices,
		Connected:   an.Connected,
		Start:       -1,
	}
	log := Logger(ctx).WithField("kind", er.Kind)
	if !an.Eulerian() {
		log.Info("graph is not eulerian")
		return er, nil
	}

	er.Start = eulerian.StartVertex(g)
	if cfg.Start == StartZero {
		er.Start = 0
	}
	er.Trail, err = eulerian.Trail(g.Clone(), er.Start)
	if err != nil {
		return nil, errors.Wrap(err, "eulerian trail")
	}
	if verr := eulerian.Verify(g, er.Trail); verr != nil {
		er.Problem = verr.Error()
		log.WithError(verr).Warn("eulerian trail is incomplete")
	} else {
		er.Complete = true
	}
	log.WithFields(logrus.Fields{"start": er.Start, "length": len(er.Trail)}).Info("eulerian trail extracted")

	return er, nil
}

func shortestPaths(ctx context.Context, cfg Config, g adjacency.Adjacency, r *Report) error {
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.Source), dijkstra.WithReturnPath())
	if err != nil {
		return errors.Wrap(err, "shortest paths")
	}
	r.Distances = make([]int64, len(dist))
	unreached := 0
	for v, d := range dist {
		if d == dijkstra.Unreached {
			r.Distances[v] = UnreachableDistance
			unreached++
			continue
		}
		r.Distances[v] = d
	}
	r.Predecessors = prev
	Logger(ctx).WithFields(logrus.Fields{"src": cfg.Source, "unreached": unreached}).Info("shortest distances computed")

	return nil
}

func spanningTree(ctx context.Context, cfg Config, g adjacency.Adjacency) (*TreeReport, error) {
	method, err := prim_kruskal.ParseMethod(cfg.MST)
	if err != nil {
		return nil, errors.Wrap(err, "spanning tree method")
	}
	t, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(method),
		prim_kruskal.WithRoot(0),
	))
	if err != nil {
		return nil, errors.Wrap(err, "spanning tree")
	}

	tr := &TreeReport{Method: method, Weight: t.Weight, Spanning: t.Spanning()}
	for v := 1; v < len(t.Parent); v++ {
		e := TreeEdge{Parent: t.Parent[v], Child: v}
		if e.Parent != prim_kruskal.NoParent {
			e.Weight = t.Key[v]
		}
		tr.Edges = append(tr.Edges, e)
	}
	Logger(ctx).WithFields(logrus.Fields{"method": method, "weight": t.Weight, "spanning": tr.Spanning}).Info("spanning tree built")

	return tr, nil
}
