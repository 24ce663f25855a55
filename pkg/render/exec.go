package render

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"runtime"
	"slices"
	"time"

	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/observability"
)

// DefaultExecutable is the Graphviz program run by [ExecRenderer].
const DefaultExecutable = "dot"

// goos is swapped in tests.
var goos = runtime.GOOS

// Platforms without a process-spawning mechanism.
var noProcessPlatforms = []string{"js", "wasip1", "ios"}

// ExecRenderer renders by running the Graphviz dot executable.
type ExecRenderer struct {
	// Path is the executable name or path. Empty means [DefaultExecutable].
	Path string
}

// Name implements [Renderer].
func (r *ExecRenderer) Name() string { return "exec" }

// Render pipes dot into `dot -T<format> -o<outPath>`.
// Requires Graphviz: brew install graphviz (macOS), apt install graphviz (Linux).
func (r *ExecRenderer) Render(ctx context.Context, dot []byte, format, outPath string, stdout io.Writer) (err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, r.Name(), format)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, r.Name(), format, time.Since(start), err) }()

	if err := checkRequest(format, outPath, nil); err != nil {
		return err
	}
	if slices.Contains(noProcessPlatforms, goos) {
		return errors.New(errors.ErrCodeUnsupportedPlatform, "cannot run external programs on %s", goos)
	}

	exe := r.Path
	if exe == "" {
		exe = DefaultExecutable
	}
	path, err := exec.LookPath(exe)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRendererNotFound, err,
			"%s export requires Graphviz. Install with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", format)
	}

	cmd := exec.CommandContext(ctx, path, "-T"+format, "-o"+outPath)
	cmd.Stdin = bytes.NewReader(dot)

	var errBuf bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "%s: %s", exe, errBuf.String())
	}
	return nil
}
