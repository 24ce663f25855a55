package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotwalk/pkg/attr"
	"github.com/matzehuels/dotwalk/pkg/discover"
	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
	"github.com/matzehuels/dotwalk/pkg/observability"
	"github.com/matzehuels/dotwalk/pkg/render"
	"github.com/matzehuels/dotwalk/pkg/render/dot"
)

// Runner executes pipeline stages with a fixed grammar and renderer.
//
// A Runner holds no per-call state; it is safe for concurrent use as long
// as its fields are not modified.
type Runner struct {
	Grammars attr.Grammars
	Renderer render.Renderer
	Logger   *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithGrammars sets the attribute grammars used for serialization.
func WithGrammars(g attr.Grammars) Option {
	return func(r *Runner) { r.Grammars = g }
}

// WithRenderer sets the renderer used by RenderFile.
func WithRenderer(rd render.Renderer) Option {
	return func(r *Runner) { r.Renderer = rd }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.Logger = l }
}

// NewRunner creates a runner. Defaults: the embedded Graphviz grammar, the
// exec renderer and log.Default().
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Grammars: attr.Default(),
		Renderer: &render.ExecRenderer{},
		Logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	return r
}

// Build discovers the graph reachable from root. attrs become the
// graph-level attributes.
func (r *Runner) Build(ctx context.Context, root any, attrs graph.Attrs) (*graph.Graph, error) {
	start := time.Now()
	g, err := discover.Build(ctx, root, attrs, discover.WithLogger(r.Logger))
	if err != nil {
		return nil, err
	}
	r.Logger.Info("discovered graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))
	return g, nil
}

// Marshal serializes g to DOT bytes.
func (r *Runner) Marshal(ctx context.Context, g *graph.Graph) ([]byte, error) {
	start := time.Now()
	data, err := dot.Marshal(g, r.Grammars)
	observability.Graph().OnSerializeComplete(ctx, len(data), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("serialized graph", "bytes", len(data), "duration", time.Since(start))
	return data, nil
}

// WriteText serializes g to w. Nothing is written when an attribute fails
// validation.
func (r *Runner) WriteText(ctx context.Context, g *graph.Graph, w io.Writer) error {
	data, err := r.Marshal(ctx, g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// RenderFile serializes g and renders it to path in format. Serialization
// errors are returned as-is; renderer failures always carry a code, with
// uncoded ones wrapped as RENDER_FAILED.
func (r *Runner) RenderFile(ctx context.Context, g *graph.Graph, path, format string, stdout io.Writer) error {
	if err := render.ValidateFormat(format); err != nil {
		return err
	}
	if r.Renderer == nil {
		return errors.New(errors.ErrCodeRendererNotFound, "no renderer configured")
	}

	data, err := r.Marshal(ctx, g)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := r.Renderer.Render(ctx, data, format, path, stdout); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "%s renderer", r.Renderer.Name())
	}
	r.Logger.Info("rendered graph",
		"renderer", r.Renderer.Name(),
		"format", format,
		"path", path,
		"duration", time.Since(start))
	return nil
}
