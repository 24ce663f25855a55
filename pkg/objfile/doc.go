// Package objfile loads object graphs described in TOML.
//
// A document names a root object and lists objects with their attributes
// and relations. Every object implements the discovery protocol, so a
// loaded document can be passed straight to discover.Build:
//
//	root = "app"
//
//	[graph]
//	rankdir = { symbol = "lr" }
//
//	[objects.app]
//	attrs = { label = "app", shape = { symbol = "box" } }
//	points_to = ["db", { to = "cache", attrs = { label = "reads" } }]
//	related = ["docs"]
//
//	[objects.proxy]
//	exclude = true
//
// Object fields:
//
//   - id: explicit node identifier (default: assigned in discovery order)
//   - attrs: node attributes
//   - exclude: produce no node; relations are still followed
//   - points_to, pointed_to_by: object names, or { to, attrs } tables for
//     attributed edges
//   - related: object names discovered without an edge
//
// An inline table { symbol = "x" } is decoded as attr.Symbol("x"), the
// form enumeration attributes such as rankdir and shape expect.
package objfile
