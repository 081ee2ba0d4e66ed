// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an adjacency store,
// returning hop distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/adjacency"
)

// walker encapsulates mutable BFS state.
type walker struct {
	g     adjacency.Adjacency
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, a context
// error, or any error returned by OnVisit.
func BFS(g adjacency.Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  filled(n, Unvisited),
			Parent: filled(n, Unvisited),
		},
	}
	w.enqueue(start, 0, Unvisited)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[u]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}

		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, v := range w.g.Neighbors(u) {
			if w.res.Depth[v] == Unvisited {
				w.enqueue(v, next, u)
			}
		}
	}

	return nil
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
