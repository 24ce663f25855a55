// Package dot serializes discovered graphs as Graphviz DOT text.
//
// # Output
//
// [Write] produces a single digraph block: graph attributes first, then
// one line per node, then one line per edge, in the order the graph holds
// them:
//
//	digraph {
//	  rankdir=lr;
//	  "0" [label="api"];
//	  "1" [label="db"];
//	  "0" -> "1" [label="writes"];
//	}
//
// Node identifiers are always quoted. Within one attribute list the keys
// are sorted, so serializing the same graph twice yields identical bytes.
//
// # Validation
//
// Every attribute is checked against the grammar of its entity kind (see
// package attr) before anything is written. An unknown attribute or a
// value of the wrong type aborts the render and leaves the writer
// untouched.
package dot
