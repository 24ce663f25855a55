package discover

import (
	"context"

	"github.com/matzehuels/dotwalk/pkg/graph"
)

// NodeProvider is implemented by every object that takes part in discovery.
//
// NodeFor is called at most once per object and per Build. Returning a nil
// node excludes the object from the graph while its relations are still
// followed.
type NodeProvider interface {
	NodeFor(s *Scope) (*graph.Node, error)
}

// TargetLister lists the objects an object points to. Elements may be
// wrapped with [With].
type TargetLister interface {
	PointsTo() ([]any, error)
}

// SourceLister lists the objects pointing to an object. Elements may be
// wrapped with [With].
type SourceLister interface {
	PointedToBy() ([]any, error)
}

// RelatedLister lists objects that must be discovered but get no edge
// from this object.
type RelatedLister interface {
	Related() ([]any, error)
}

// Identifier supplies a stable identity handle for objects that are not
// pointers. The handle must be comparable.
type Identifier interface {
	Identity() any
}

// Attributed pairs an object with the attributes of the edge leading to
// (or coming from) it. It is never a node itself.
type Attributed struct {
	Object any
	Attrs  graph.Attrs
}

// With wraps obj so the edge created for it carries attrs.
func With(obj any, attrs graph.Attrs) Attributed {
	return Attributed{Object: obj, Attrs: attrs}
}

// unwrap strips an attribution wrapper, returning the object and the
// edge attributes it carried.
func unwrap(item any) (any, graph.Attrs) {
	switch a := item.(type) {
	case Attributed:
		return a.Object, a.Attrs
	case *Attributed:
		if a == nil {
			return nil, nil
		}
		return a.Object, a.Attrs
	}
	return item, nil
}

// Scope is handed to NodeFor during a Build.
type Scope struct {
	ctx  context.Context
	next int
}

// Context returns the context Build was called with.
func (s *Scope) Context() context.Context { return s.ctx }

// Node creates a node with the next sequential identifier.
func (s *Scope) Node(attrs graph.Attrs) *graph.Node {
	n := &graph.Node{ID: s.next, Attrs: attrs}
	s.next++
	return n
}
