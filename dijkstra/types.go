// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil adjacency store was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0,n).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that PathTo was asked for a vertex the source never reached.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadPredecessors indicates a predecessor array that does not lead back to the source.
	ErrBadPredecessors = errors.New("dijkstra: malformed predecessor array")
)

const (
	// Unreached is the distance of a vertex the source cannot reach.
	Unreached int64 = math.MaxInt64

	// NoPredecessor marks the source and every unreached vertex in prev.
	NoPredecessor = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id (validated in Dijkstra).
// ReturnPath       – if true, return the predecessor array; otherwise prev is nil.
// MaxDistance      – vertices whose distance would exceed this cap stay Unreached.
// InfEdgeThreshold – edges with weight ≥ this threshold are never relaxed.
type Options struct {
	Source           int   // The id of the source vertex
	ReturnPath       bool  // Whether to return the predecessor array
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex. Default is 0.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor array in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as absent.
// Panics with ErrBadInfThreshold on threshold ≤ 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no impassable edges.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
