package graph

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonGraph struct {
	Attrs Attrs      `json:"attrs,omitempty"`
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID    int   `json:"id"`
	Attrs Attrs `json:"attrs,omitempty"`
}

type jsonEdge struct {
	From  int   `json:"from"`
	To    int   `json:"to"`
	Attrs Attrs `json:"attrs,omitempty"`
}

// WriteJSON encodes g as indented JSON. Edges refer to nodes by
// identifier; nodes and edges keep their discovery order.
func WriteJSON(g *Graph, w io.Writer) error {
	out := jsonGraph{
		Attrs: g.Attrs,
		Nodes: make([]jsonNode, len(g.Nodes)),
		Edges: make([]jsonEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = jsonNode{ID: n.ID, Attrs: n.Attrs}
	}
	for i, e := range g.Edges {
		out.Edges[i] = jsonEdge{From: e.From.ID, To: e.To.ID, Attrs: e.Attrs}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
