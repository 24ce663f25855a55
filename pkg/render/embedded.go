package render

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/observability"
)

// embeddedFormats are the formats go-graphviz can write.
var embeddedFormats = []string{FormatSVG, FormatPNG, FormatJPG, FormatDOT}

// EmbeddedRenderer renders in-process with the WebAssembly build of
// Graphviz shipped by go-graphviz. It supports svg, png, jpg and dot.
type EmbeddedRenderer struct{}

// Name implements [Renderer].
func (EmbeddedRenderer) Name() string { return "embedded" }

// Render parses dot and writes it in format to outPath. The embedded
// engine prints nothing, so stdout is unused.
func (r EmbeddedRenderer) Render(ctx context.Context, dot []byte, format, outPath string, _ io.Writer) (err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, r.Name(), format)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, r.Name(), format, time.Since(start), err) }()

	if err := checkRequest(format, outPath, embeddedFormats); err != nil {
		return err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "create %s", outPath)
	}
	defer f.Close()

	if err := gv.Render(ctx, g, graphviz.Format(format), f); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return nil
}
