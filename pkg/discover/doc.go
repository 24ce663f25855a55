// Package discover turns a root object into a deduplicated graph.
//
// # Overview
//
// Client types describe their place in the graph by implementing a small
// capability protocol:
//
//   - [NodeProvider] (required): the node representing the object, or nil
//     to keep the object out of the graph
//   - [TargetLister]: objects this one points to
//   - [SourceLister]: objects that point to this one
//   - [RelatedLister]: objects to discover without drawing an edge
//
// The three relationship capabilities are optional; a type that does not
// implement one behaves as if it returned an empty list.
//
// [Build] walks the objects depth-first. Every object is asked for its
// node exactly once, no matter how often it is referenced, and cycles
// terminate because an object is recorded as seen before its relations are
// followed. Objects whose NodeFor returns nil are still walked, so they can
// link otherwise unrelated parts of the graph without appearing in it.
//
// # Attributed Relations
//
// An element of PointsTo or PointedToBy may be wrapped with [With] to put
// attributes on the resulting edge:
//
//	func (s *Service) PointsTo() ([]any, error) {
//	    return []any{
//	        s.cache,
//	        discover.With(s.db, graph.Attrs{"label": "writes"}),
//	    }, nil
//	}
//
// The wrapper is removed before the object is looked up, so wrapping never
// creates a second node.
//
// # Identity
//
// Objects are deduplicated by identity, not by value. Pointers, channels
// and maps are identified by address. Any other value must implement
// [Identifier] to supply a stable handle; Build rejects values it cannot
// identify instead of silently merging structurally equal objects.
//
// # Node Identifiers
//
// [Scope.Node] hands out identifiers sequentially from zero in discovery
// order. A client may return a node with an identifier of its own instead;
// Build fails if two nodes end up sharing one.
//
// # Concurrency
//
// Every Build call owns its memo table and identifier counter. Separate
// calls may run concurrently as long as the client objects tolerate it.
package discover
