// Package render turns DOT text into image files.
//
// # Overview
//
// Rendering sits outside the discovery and serialization core: the core
// produces DOT text, a [Renderer] lays it out and writes the requested
// format. Two implementations are provided:
//
//   - [ExecRenderer] pipes the text into the Graphviz dot executable,
//     which must be installed and on PATH (or named explicitly)
//   - [EmbeddedRenderer] runs Graphviz in-process through
//     [github.com/goccy/go-graphviz], with no external tools
//
//	r := &render.ExecRenderer{}
//	err := r.Render(ctx, dotText, "svg", "out.svg", os.Stdout)
//
// # Errors
//
// Failures are reported with their own codes so callers can tell them
// apart from attribute validation errors: RENDERER_NOT_FOUND when the
// executable cannot be located, UNSUPPORTED_PLATFORM when the host cannot
// spawn processes, RENDER_FAILED when Graphviz itself fails.
package render
