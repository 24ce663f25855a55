package discover

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
	"github.com/matzehuels/dotwalk/pkg/observability"
)

// Option configures a Build.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger traces the walk at debug level on l.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Build discovers every object reachable from root and returns the graph
// of their nodes and edges, with attrs as the top-level attributes.
//
// Errors returned by client protocol methods are passed through unchanged
// and abort the build; no partial graph is returned.
func Build(ctx context.Context, root any, attrs graph.Attrs, opts ...Option) (*graph.Graph, error) {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	hooks := observability.Graph()
	hooks.OnDiscoverStart(ctx)
	start := time.Now()

	g, err := build(ctx, root, attrs, o)
	if err != nil {
		hooks.OnDiscoverComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	hooks.OnDiscoverComplete(ctx, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	o.logger.Debug("discovery complete", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

func build(ctx context.Context, root any, attrs graph.Attrs, o options) (*graph.Graph, error) {
	if obj, _ := unwrap(root); obj == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "root object is nil")
	}

	w := &walker{
		scope:  &Scope{ctx: ctx},
		memo:   make(map[any]*graph.Node),
		ids:    make(map[int]bool),
		seen:   make(map[[2]*graph.Node][]*graph.Edge),
		logger: o.logger,
	}
	if _, err := w.visit(root); err != nil {
		return nil, err
	}

	// Accumulation is post-order; reversing puts the root first.
	slices.Reverse(w.nodes)
	slices.Reverse(w.edges)

	return &graph.Graph{
		Attrs: attrs.Clone(),
		Nodes: w.nodes,
		Edges: w.edges,
	}, nil
}

// walker holds the scratch state of a single Build.
type walker struct {
	scope *Scope

	// memo maps an object's identity to its node. A nil value records an
	// object that produced no node.
	memo  map[any]*graph.Node
	ids   map[int]bool
	seen  map[[2]*graph.Node][]*graph.Edge
	nodes []*graph.Node
	edges []*graph.Edge

	logger *log.Logger
}

// link is a discovered relation: the node at the other end (possibly nil)
// and the attributes the relation was wrapped with.
type link struct {
	node  *graph.Node
	attrs graph.Attrs
}

// visit discovers item and returns the node of the underlying object, or
// nil when the object produced none.
func (w *walker) visit(item any) (*graph.Node, error) {
	obj, _ := unwrap(item)
	key, err := identity(obj)
	if err != nil {
		return nil, err
	}
	if n, ok := w.memo[key]; ok {
		return n, nil
	}

	p, ok := obj.(NodeProvider)
	if !ok {
		return nil, errors.New(errors.ErrCodeProtocol, "%T does not implement discover.NodeProvider", obj)
	}
	n, err := p.NodeFor(w.scope)
	if err != nil {
		return nil, err
	}
	// Recorded before following relations so cycles terminate.
	w.memo[key] = n

	related, err := relatedOf(obj)
	if err != nil {
		return nil, err
	}
	for _, r := range related {
		if _, err := w.visit(r); err != nil {
			return nil, err
		}
	}

	targets, err := w.follow(obj, pointsTo)
	if err != nil {
		return nil, err
	}
	sources, err := w.follow(obj, pointedToBy)
	if err != nil {
		return nil, err
	}

	if n == nil {
		return nil, nil
	}
	if w.ids[n.ID] {
		return nil, errors.New(errors.ErrCodeDuplicateID, "%T: node id %d is already in use", obj, n.ID)
	}
	w.ids[n.ID] = true
	w.nodes = append(w.nodes, n)
	w.logger.Debug("discovered node", "id", n.ID, "type", typeName(obj))

	for _, t := range targets {
		if t.node != nil {
			w.addEdge(n, t.node, t.attrs)
		}
	}
	for _, s := range sources {
		if s.node != nil {
			w.addEdge(s.node, n, s.attrs)
		}
	}
	return n, nil
}

// follow lists one kind of relation of obj and discovers each element.
func (w *walker) follow(obj any, list func(any) ([]any, error)) ([]link, error) {
	items, err := list(obj)
	if err != nil {
		return nil, err
	}
	links := make([]link, 0, len(items))
	for _, item := range items {
		n, err := w.visit(item)
		if err != nil {
			return nil, err
		}
		_, attrs := unwrap(item)
		links = append(links, link{node: n, attrs: attrs})
	}
	return links, nil
}

// addEdge appends an edge unless an identical one already exists.
func (w *walker) addEdge(from, to *graph.Node, attrs graph.Attrs) {
	e := &graph.Edge{From: from, To: to, Attrs: attrs.Clone()}
	pair := [2]*graph.Node{from, to}
	for _, prev := range w.seen[pair] {
		if prev.Same(e) {
			return
		}
	}
	w.seen[pair] = append(w.seen[pair], e)
	w.edges = append(w.edges, e)
}

func relatedOf(obj any) ([]any, error) {
	if r, ok := obj.(RelatedLister); ok {
		return r.Related()
	}
	return nil, nil
}

func pointsTo(obj any) ([]any, error) {
	if t, ok := obj.(TargetLister); ok {
		return t.PointsTo()
	}
	return nil, nil
}

func pointedToBy(obj any) ([]any, error) {
	if s, ok := obj.(SourceLister); ok {
		return s.PointedToBy()
	}
	return nil, nil
}

func typeName(obj any) string {
	return fmt.Sprintf("%T", obj)
}
