package dot

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/dotwalk/pkg/attr"
	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
)

// Write renders g as DOT text to w, validating attributes against gr.
// Nothing is written if validation fails.
func Write(w io.Writer, g *graph.Graph, gr attr.Grammars) error {
	data, err := Marshal(g, gr)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// String renders g as DOT text.
func String(g *graph.Graph, gr attr.Grammars) (string, error) {
	data, err := Marshal(g, gr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Marshal renders g as DOT bytes.
func Marshal(g *graph.Graph, gr attr.Grammars) ([]byte, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is nil")
	}

	var buf bytes.Buffer
	buf.WriteString("digraph {\n")

	for _, k := range g.Attrs.Keys() {
		v, err := attr.Format(attr.KindGraph, gr.Graph, k, g.Attrs[k])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "  %s=%s;\n", k, v)
	}

	for _, n := range g.Nodes {
		list, err := fmtAttrs(attr.KindNode, gr.Node, n.Attrs)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeRef(n), list)
	}

	for _, e := range g.Edges {
		list, err := fmtAttrs(attr.KindEdge, gr.Edge, e.Attrs)
		if err != nil {
			return nil, fmt.Errorf("edge %d -> %d: %w", e.From.ID, e.To.ID, err)
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", nodeRef(e.From), nodeRef(e.To), list)
	}

	buf.WriteString("}")
	return buf.Bytes(), nil
}

func nodeRef(n *graph.Node) string {
	return attr.Quote(strconv.Itoa(n.ID))
}

func fmtAttrs(kind attr.Kind, grammar attr.Grammar, attrs graph.Attrs) (string, error) {
	parts := make([]string, 0, len(attrs))
	for _, k := range attrs.Keys() {
		v, err := attr.Format(kind, grammar, k, attrs[k])
		if err != nil {
			return "", err
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ","), nil
}
