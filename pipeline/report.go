// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkit/adjacency"
)

// UnreachableDistance replaces dijkstra.Unreached in Report.Distances.
const UnreachableDistance int64 = -1

// Report is the outcome of one Run. Sections after Realized are only
// populated when the sequence was realized.
type Report struct {
	Seed      int64 `yaml:"seed"`
	Vertices  int   `yaml:"vertices"`
	Sequence  []int `yaml:"sequence"`
	Graphical bool  `yaml:"graphical"`

	Realized     bool   `yaml:"realized"`
	RealizeMode  string `yaml:"realize_mode"`
	RealizeError string `yaml:"realize_error,omitempty"`
	// Degrees is the degree sequence of the realized graph, which differs
	// from Sequence only in positional mode.
	Degrees []int `yaml:"degrees,omitempty"`
	Edges   int   `yaml:"edges"`

	Eulerian *EulerianReport `yaml:"eulerian,omitempty"`

	Graph        []adjacency.Edge `yaml:"graph,omitempty"`
	Source       int              `yaml:"source"`
	Distances    []int64          `yaml:"distances,omitempty"`
	Predecessors []int            `yaml:"predecessors,omitempty"`

	Tree *TreeReport `yaml:"tree,omitempty"`
}

// EulerianReport describes classification and trail extraction.
type EulerianReport struct {
	Kind        string `yaml:"kind"`
	OddVertices []int  `yaml:"odd_vertices"`
	Connected   bool   `yaml:"connected"`
	Start       int    `yaml:"start"`
	Trail       []int  `yaml:"trail,omitempty"`
	Complete    bool   `yaml:"complete"`
	Problem     string `yaml:"problem,omitempty"`
}

// TreeReport lists the spanning tree edge of every vertex 1..n-1.
type TreeReport struct {
	Method   string     `yaml:"method"`
	Weight   int64      `yaml:"weight"`
	Spanning bool       `yaml:"spanning"`
	Edges    []TreeEdge `yaml:"edges"`
}

// TreeEdge links Child to Parent; Parent is -1 when Child is unreached or
// roots its own component.
type TreeEdge struct {
	Parent int   `yaml:"parent"`
	Child  int   `yaml:"child"`
	Weight int64 `yaml:"weight"`
}

// WriteYAML encodes r with two-space indentation.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

// WriteText renders r in the line-oriented console format.
func (r *Report) WriteText(w io.Writer) error {
	p := &printer{w: w}
	p.printf("Seed: %d\n", r.Seed)
	p.printf("Generated degree sequence: %s\n", joinInts(r.Sequence))
	if !r.Realized {
		p.printf("Graph cannot be constructed with this degree sequence.\n")
		return p.err
	}
	p.printf("Graph constructed successfully (%d edges).\n", r.Edges)

	if e := r.Eulerian; e != nil {
		if e.Kind == "none" {
			p.printf("The graph is not Eulerian.\n")
		} else {
			p.printf("The graph is Eulerian (%s).\n", e.Kind)
			p.printf("Eulerian path/circuit: %s\n", joinInts(e.Trail))
			if !e.Complete {
				p.printf("Warning: trail is incomplete: %s\n", e.Problem)
			}
		}
	}

	dist := make([]string, len(r.Distances))
	for i, d := range r.Distances {
		if d == UnreachableDistance {
			dist[i] = "unreachable"
		} else {
			dist[i] = strconv.FormatInt(d, 10)
		}
	}
	p.printf("Shortest distances from vertex %d: %s\n", r.Source, strings.Join(dist, " "))

	if t := r.Tree; t != nil {
		p.printf("Minimum Spanning Tree (%s, weight %d):\n", t.Method, t.Weight)
		for _, e := range t.Edges {
			if e.Parent < 0 {
				p.printf("none - %d\n", e.Child)
				continue
			}
			p.printf("%d - %d\n", e.Parent, e.Child)
		}
	}

	return p.err
}

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
