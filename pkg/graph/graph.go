// Package graph holds the dependency graph produced by a resolution walk.
//
// Nodes are identified by Maven coordinate strings ("group:artifact:version")
// and edges point from a package to its declared dependency. The graph is a
// record of the walk - insertion order is preserved so output is stable -
// and can be serialized to Graphviz DOT or rendered to SVG.
package graph

import "errors"

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// has not been added as a node.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")
)

// Node is a vertex in the dependency graph.
type Node struct {
	ID   string            // Coordinate string, unique within the graph
	Meta map[string]string // Display metadata (scope, depth, ...)
}

// Edge is a directed dependency relation between two nodes.
type Edge struct {
	From string // Dependent coordinate
	To   string // Dependency coordinate
}

// Graph is a directed graph of resolved packages.
// It is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes   map[string]*Node
	order   []string
	edges   []Edge
	edgeSet map[Edge]bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edgeSet: make(map[Edge]bool),
	}
}

// AddNode inserts a node. Adding an existing ID again is a no-op, so the
// walker can record a node each time a coordinate is encountered.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[n.ID]; ok {
		return nil
	}
	if n.Meta == nil {
		n.Meta = make(map[string]string)
	}
	node := n
	g.nodes[n.ID] = &node
	g.order = append(g.order, n.ID)
	return nil
}

// AddEdge inserts a directed edge. Both endpoints must already exist.
// Duplicate edges are dropped.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownEndpoint
	}
	if g.edgeSet[e] {
		return nil
	}
	g.edgeSet[e] = true
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID, or false if absent.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }
