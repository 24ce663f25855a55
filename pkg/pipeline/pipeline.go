// Package pipeline wires discovery, serialization and rendering together.
//
// The three stages are the public operations of dotwalk:
//
//  1. Build: discover the object graph reachable from a root object
//  2. WriteText: serialize a graph to DOT text
//  3. RenderFile: serialize a graph and hand it to a [render.Renderer]
//
// Both the CLI and the HTTP server go through a [Runner] so that logging,
// grammar selection and observability hooks behave the same everywhere.
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.WithLogger(logger))
//	g, err := runner.Build(ctx, root, nil)
//	if err != nil {
//	    return err
//	}
//	err = runner.RenderFile(ctx, g, "graph.svg", "svg", os.Stdout)
package pipeline

import (
	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/render"
)

// Renderer engines selectable by name.
const (
	EngineExec     = "exec"
	EngineEmbedded = "embedded"
)

// DefaultEngine is used when no engine is named.
const DefaultEngine = EngineExec

// Engines lists the valid engine names.
var Engines = []string{EngineExec, EngineEmbedded}

// NewRenderer returns the renderer for engine. An empty engine selects
// [DefaultEngine].
func NewRenderer(engine string) (render.Renderer, error) {
	switch engine {
	case "", EngineExec:
		return &render.ExecRenderer{}, nil
	case EngineEmbedded:
		return render.EmbeddedRenderer{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown render engine %q (must be exec or embedded)", engine)
}
