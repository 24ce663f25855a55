// Package graph defines the data model shared by discovery and serialization.
//
// # Overview
//
// A [Graph] is the result of one discovery run: top-level attributes, an
// ordered list of [Node] values and an ordered list of [Edge] values. Nodes
// carry an integer identifier that is unique within the graph; edges refer
// to their endpoints by pointer, never by copy, so an edge endpoint is
// always the very node stored in [Graph.Nodes].
//
// Graphs are produced by [discover.Build] and handed to the serializer in
// [dot]. After Build returns, the graph is owned by the caller and is
// never mutated by the library again.
//
// # Attributes
//
// [Attrs] is a plain map from attribute name to value. Which names are
// legal, and what values they accept, is decided at serialization time by
// an attribute grammar (see package attr). Two attribute sets are equal
// when they are structurally equal; see [Attrs.Equal].
//
// # Concurrency
//
// Graph values are not safe for concurrent mutation. Serializing the same
// graph from several goroutines is safe because serialization only reads.
//
// [discover.Build]: github.com/matzehuels/dotwalk/pkg/discover.Build
// [dot]: github.com/matzehuels/dotwalk/pkg/render/dot
package graph
