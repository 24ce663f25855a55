// Package pkg provides the libraries behind dotwalk.
//
// # Overview
//
// dotwalk turns an arbitrary object graph into Graphviz DOT text. Client
// types describe themselves through a small protocol; dotwalk walks them
// from a root, collects nodes and edges, validates every attribute against
// a grammar and writes the result.
//
// # Architecture
//
//	client objects (or a TOML object document)
//	         ↓
//	    [discover] package (memoized walk → graph.Graph)
//	         ↓
//	    [render/dot] package (grammar-checked DOT text)
//	         ↓
//	    [render] package (optional: Graphviz → SVG/PNG/PDF...)
//
// # Quick Start
//
//	type service struct {
//	    name string
//	    deps []any
//	}
//
//	func (s *service) NodeFor(sc *discover.Scope) (*graph.Node, error) {
//	    return sc.Node(graph.Attrs{"label": s.name}), nil
//	}
//
//	func (s *service) PointsTo() ([]any, error) { return s.deps, nil }
//
//	db := &service{name: "db"}
//	api := &service{name: "api", deps: []any{db}}
//
//	g, _ := discover.Build(ctx, api, nil)
//	text, _ := dot.String(g, attr.Default())
//
// # Main Packages
//
// [graph] - The discovered graph: nodes, edges and attribute maps.
//
// [discover] - The discovery protocol and the traversal that builds a graph.
//
// [attr] - Attribute grammars, value formatting and DOT string escaping,
// with the Graphviz grammar embedded as TOML.
//
// [render/dot] - The DOT serializer.
//
// [render] - Renderers that turn DOT text into images: the dot executable
// or the embedded WebAssembly Graphviz.
//
// [pipeline] - Runner wiring the stages with logging and hooks, used by the
// CLI and HTTP server.
//
// [objfile] - Object graphs declared in TOML.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for metrics and tracing integrations.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/graph
// [discover]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/discover
// [attr]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/attr
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/render/dot
// [render]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/pipeline
// [objfile]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/objfile
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/observability
package pkg
