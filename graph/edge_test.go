package graph

import (
	"testing"

	"go.viam.com/test"
)

func TestDirectedEdgeTraversal(t *testing.T) {
	e := Edge[string]{ID: 1, Kind: Directed, Tail: 10, Head: 20, Data: "a->b", Weight: 2.5}
	test.That(t, e.Valid(), test.ShouldBeTrue)
	test.That(t, e.Weight, test.ShouldEqual, 2.5)
	test.That(t, e.Data, test.ShouldEqual, "a->b")

	// traversable only from tail to head
	test.That(t, From(e, 10), test.ShouldEqual, VertexID(20))
	test.That(t, From(e, 20), test.ShouldEqual, VertexID(NullID))
	test.That(t, To(e, 20), test.ShouldEqual, VertexID(10))
	test.That(t, To(e, 10), test.ShouldEqual, VertexID(NullID))

	// vertices that are not ends of the edge are unreachable
	test.That(t, From(e, 30), test.ShouldEqual, VertexID(NullID))
	test.That(t, To(e, 30), test.ShouldEqual, VertexID(NullID))
}

func TestUndirectedEdgeTraversal(t *testing.T) {
	e := Edge[int]{ID: 2, Kind: Undirected, Tail: 10, Head: 20, Data: 7, Weight: 1}
	test.That(t, e.Valid(), test.ShouldBeTrue)

	test.That(t, From(e, 10), test.ShouldEqual, VertexID(20))
	test.That(t, From(e, 20), test.ShouldEqual, VertexID(10))
	test.That(t, To(e, 10), test.ShouldEqual, VertexID(20))
	test.That(t, To(e, 20), test.ShouldEqual, VertexID(10))

	test.That(t, From(e, 30), test.ShouldEqual, VertexID(NullID))
}

func TestNullEdge(t *testing.T) {
	e := NullEdge[string]()
	test.That(t, e.Valid(), test.ShouldBeFalse)
	test.That(t, e.Weight, test.ShouldEqual, 1.0)
	test.That(t, From(e, 10), test.ShouldEqual, VertexID(NullID))

	// an edge missing an end is also invalid
	partial := Edge[string]{ID: 3, Tail: 10, Head: NullID}
	test.That(t, partial.Valid(), test.ShouldBeFalse)
}
