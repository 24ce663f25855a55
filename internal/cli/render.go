package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/objfile"
	"github.com/matzehuels/dotwalk/pkg/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output string // output path; "" writes DOT to stdout or derives an image path
	format string // renderer output format; "" writes DOT text
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <objects.toml>",
		Short: "Write an object document as DOT text or a rendered image",
		Long: `Discover the object graph described by a TOML object document and write it
as Graphviz DOT text.

Without --format the DOT text goes to stdout, or to --output. With --format
the text is handed to a renderer (see --engine) and the image is written to
--output, defaulting to the document name with the format as extension.`,
		Example: `  dotwalk render services.toml
  dotwalk render services.toml -o services.dot
  dotwalk render services.toml -f svg
  dotwalk render services.toml -f png --engine embedded -o out.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "" {
				if err := render.ValidateFormat(opts.format); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "render format: "+strings.Join(render.Formats, ", "))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout, stderr io.Writer, path string, opts renderOpts) error {
	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	doc, err := objfile.LoadFile(path)
	if err != nil {
		return err
	}
	g, err := runner.Build(ctx, doc.Root, doc.Attrs)
	if err != nil {
		return err
	}

	if opts.format == "" {
		if opts.output == "" {
			return runner.WriteText(ctx, g, stdout)
		}
		data, err := runner.Marshal(ctx, g)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return err
		}
		printSuccess(stdout, "Wrote DOT text")
		printStats(stdout, g.NodeCount(), g.EdgeCount())
		printFile(stdout, opts.output)
		return nil
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + opts.format
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, stderr, fmt.Sprintf("Rendering %s with %s...", filepath.Base(out), runner.Renderer.Name()))
	spinner.Start()
	if err := runner.RenderFile(ctx, g, out, opts.format, stdout); err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done("Rendered " + out)

	printSuccess(stdout, "Rendered %s", opts.format)
	printStats(stdout, g.NodeCount(), g.EdgeCount())
	printFile(stdout, out)
	return nil
}
