// Package attr validates and formats DOT attribute values.
//
// # Grammars
//
// Which attributes a graph, node or edge may carry is configuration data,
// not code. A [Grammar] maps an attribute name to a [Type]; [Grammars]
// bundles the three per-kind grammars. Grammars are loaded from TOML with
// [Load] or [LoadFile], or taken from the embedded Graphviz table returned
// by [Default]:
//
//	[node]
//	label = "text"
//	width = "float"
//	shape = { symbols = ["box", "ellipse", "circle"] }
//
// # Types
//
//   - integer: any Go integer, written in decimal
//   - boolean: written as true or false by truthiness (nil and false are false)
//   - text: a string or fmt.Stringer, written quoted via [Quote]
//   - float: any real number, narrowed to single precision
//   - enumeration: one of a fixed set of values; [Symbol] members are
//     written in lower case, other members verbatim
//
// Only text values are quoted. An attribute absent from the grammar is an
// UNKNOWN_ATTRIBUTE error; a value of the wrong type is a TYPE_MISMATCH error.
//
// # Escaping
//
// [Quote] escapes double quotes and newlines and nothing else. Backslashes
// pass through untouched because Graphviz gives sequences such as \l and
// \N a meaning of their own.
package attr
