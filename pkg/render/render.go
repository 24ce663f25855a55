package render

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/dotwalk/pkg/errors"
)

// Renderer lays out DOT text and writes it to outPath in the given format.
type Renderer interface {
	// Name identifies the renderer in logs and hooks.
	Name() string
	// Render writes dot rendered as format to outPath. Anything the
	// renderer prints on standard output is forwarded to stdout, which
	// may be nil.
	Render(ctx context.Context, dot []byte, format, outPath string, stdout io.Writer) error
}

// Output format tokens understood by the dot executable.
const (
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatJPG   = "jpg"
	FormatGIF   = "gif"
	FormatPS    = "ps"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatXDOT  = "xdot"
	FormatPlain = "plain"
)

// Formats lists every format token accepted by [ValidateFormat].
var Formats = []string{
	FormatSVG, FormatPNG, FormatPDF, FormatJPG, FormatGIF,
	FormatPS, FormatJSON, FormatDOT, FormatXDOT, FormatPlain,
}

// ValidateFormat checks that format is a known output format token.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

func checkRequest(format, outPath string, supported []string) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if supported != nil && !slices.Contains(supported, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "format %s is not supported by this renderer", format)
	}
	if outPath == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path is empty")
	}
	return nil
}
