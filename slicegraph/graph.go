package slicegraph

import (
	"sync"

	"github.com/globular-io/globular/diagram"
)

// NodeID identifies a node within a single Graph. IDs are never reused
// within a graph's lifetime.
type NodeID int

// EdgeID identifies an edge within a single Graph.
type EdgeID int

type nodeEntry[V any] struct {
	key     V
	diagram diagram.Diagram
}

type edgeEntry[E any] struct {
	key      E
	rewrite  diagram.Rewrite
	from, to NodeID
}

// Graph is a directed multigraph whose nodes carry a diagram and a
// caller-chosen key V, and whose edges carry a rewrite and a caller-chosen
// key E. It plays the role the teacher's core.Graph plays for plain
// vertices and edges, generalised from string-keyed vertices to
// generically-keyed nodes carrying diagram payloads, and adapted from the
// teacher's map-of-maps adjacency to a dense-int-ID adjacency list
// since node identity here is always an int assigned by AddNode.
//
// Mutation and query methods acquire mu the same way the teacher's Graph
// acquires muVert/muEdgeAdj: a single RWMutex here since nodes and edges
// are small, tightly-coupled maps rather than independently-contended
// ones.
type Graph[V any, E any] struct {
	mu sync.RWMutex

	nextNode NodeID
	nextEdge EdgeID

	nodes map[NodeID]nodeEntry[V]
	edges map[EdgeID]edgeEntry[E]

	// adjacency[from] holds the IDs of every edge leaving from, in
	// insertion order.
	adjacency map[NodeID][]EdgeID
}

// New returns an empty Graph.
func New[V any, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		nodes:     make(map[NodeID]nodeEntry[V]),
		edges:     make(map[EdgeID]edgeEntry[E]),
		adjacency: make(map[NodeID][]EdgeID),
	}
}

// AddNode inserts a new node carrying key and d, returning its ID.
func (g *Graph[V, E]) AddNode(key V, d diagram.Diagram) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextNode
	g.nextNode++
	g.nodes[id] = nodeEntry[V]{key: key, diagram: d}
	return id
}

// AddEdge inserts a directed edge from -> to carrying key and r, returning
// its ID. from and to need not already exist as far as this method is
// concerned, but callers in this package always add nodes first.
func (g *Graph[V, E]) AddEdge(from, to NodeID, key E, r diagram.Rewrite) EdgeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = edgeEntry[E]{key: key, rewrite: r, from: from, to: to}
	g.adjacency[from] = append(g.adjacency[from], id)
	return id
}

// Node returns the key and diagram stored at id.
func (g *Graph[V, E]) Node(id NodeID) (V, diagram.Diagram, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.nodes[id]
	return e.key, e.diagram, ok
}

// Edge returns the key, rewrite and endpoints stored at id.
func (g *Graph[V, E]) Edge(id EdgeID) (E, diagram.Rewrite, NodeID, NodeID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	return e.key, e.rewrite, e.from, e.to, ok
}

// Nodes returns every node ID, in insertion order.
func (g *Graph[V, E]) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, g.nextNode)
	for i := range out {
		out[i] = NodeID(i)
	}
	return out
}

// Edges returns every edge ID, in insertion order.
func (g *Graph[V, E]) Edges() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeID, g.nextEdge)
	for i := range out {
		out[i] = EdgeID(i)
	}
	return out
}

// NodeCount returns the number of nodes added so far.
func (g *Graph[V, E]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of edges added so far.
func (g *Graph[V, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
