package graph

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Attrs is a set of attribute key/value pairs.
type Attrs map[string]any

// Equal reports whether a and b hold structurally equal attributes.
// A nil set and an empty set are equal.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(map[string]any(a), map[string]any(b))
}

// Keys returns the attribute names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Clone returns a shallow copy of a. Cloning nil yields nil.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// Node is a discovered graph vertex.
type Node struct {
	ID    int
	Attrs Attrs
}

// Edge is a directed, attributed connection between two nodes.
type Edge struct {
	From  *Node
	To    *Node
	Attrs Attrs
}

// Same reports whether e and o connect the same node pointers and carry
// structurally equal attributes.
func (e *Edge) Same(o *Edge) bool {
	return e.From == o.From && e.To == o.To && e.Attrs.Equal(o.Attrs)
}

// Graph is the deduplicated node and edge set produced by one discovery run.
type Graph struct {
	Attrs Attrs
	Nodes []*Node
	Edges []*Edge
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the node with the given identifier.
func (g *Graph) Node(id int) (*Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// Validate checks the structural invariants of g: node identifiers are
// unique, and every edge endpoint is a node held by g.
func (g *Graph) Validate() error {
	members := make(map[*Node]bool, len(g.Nodes))
	ids := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n == nil {
			return fmt.Errorf("nil node")
		}
		if ids[n.ID] {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		ids[n.ID] = true
		members[n] = true
	}
	for i, e := range g.Edges {
		if !members[e.From] || !members[e.To] {
			return fmt.Errorf("edge %d: endpoint not in graph", i)
		}
	}
	return nil
}
