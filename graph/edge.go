// Package graph provides a minimal generic edge container for building graph
// structures over integer vertex ids. Edges carry arbitrary payload data and a
// scalar weight, and are either directed or undirected; traversal helpers
// branch on that tag rather than dispatching through an interface, since the
// set of edge kinds is closed.
package graph

import "math"

// VertexID uniquely identifies a vertex.
type VertexID uint64

// EdgeID uniquely identifies an edge.
type EdgeID uint64

// NullID is the id reserved for "no vertex": traversal helpers return it when
// an edge cannot be crossed in the requested direction, and an edge carrying
// it as its own id is invalid.
const NullID = math.MaxUint64

// Kind tags an Edge as directed or undirected.
type Kind uint8

const (
	// Undirected edges can be traversed in both directions.
	Undirected Kind = iota
	// Directed edges can only be traversed from tail to head.
	Directed
)

// Edge connects a pair of vertices and carries arbitrary payload data and a
// weight. For directed edges Tail and Head are the source and destination; for
// undirected edges the order has no meaning beyond identifying the two ends.
type Edge[E any] struct {
	// ID uniquely identifies this edge within its graph.
	ID EdgeID

	// Kind selects directed or undirected traversal.
	Kind Kind

	// Tail and Head are the two ends of the edge.
	Tail VertexID
	Head VertexID

	// Data is arbitrary user data.
	Data E

	// Weight is the cost of traversing the edge.
	Weight float64
}

// NullEdge returns the invalid edge sentinel: both ends and the id are NullID.
func NullEdge[E any]() Edge[E] {
	return Edge[E]{ID: NullID, Tail: NullID, Head: NullID, Weight: 1}
}

// Valid reports whether the edge has a usable id and two usable ends.
func (e Edge[E]) Valid() bool {
	return e.ID != NullID && e.Tail != NullID && e.Head != NullID
}

// From returns the vertex reachable by crossing e starting at from. For an
// undirected edge that is the opposite end; for a directed edge it is the head
// when starting at the tail. NullID is returned when the edge cannot be
// crossed that way, including when from is not an end of e.
func From[E any](e Edge[E], from VertexID) VertexID {
	switch e.Kind {
	case Directed:
		if from != e.Tail {
			return NullID
		}
		return e.Head
	default:
		if from == e.Tail {
			return e.Head
		}
		if from == e.Head {
			return e.Tail
		}
		return NullID
	}
}

// To returns the vertex from which e can be crossed to arrive at to. For an
// undirected edge that is the opposite end; for a directed edge it is the tail
// when arriving at the head. NullID is returned when no such vertex exists.
func To[E any](e Edge[E], to VertexID) VertexID {
	switch e.Kind {
	case Directed:
		if to != e.Head {
			return NullID
		}
		return e.Tail
	default:
		return From(e, to)
	}
}
