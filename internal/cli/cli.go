package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/attr"
	"github.com/matzehuels/dotwalk/pkg/buildinfo"
	"github.com/matzehuels/dotwalk/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "dotwalk"

// Environment fallbacks for the persistent flags.
const (
	envGrammar  = "DOTWALK_GRAMMAR"
	envRenderer = "DOTWALK_RENDERER"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// builtinGrammar names the embedded grammar in output.
const builtinGrammar = "built-in Graphviz grammar"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose     bool
	grammarPath string
	engine      string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dotwalk discovers object graphs and writes them as Graphviz DOT",
		Long: `dotwalk walks an object graph described in a TOML document, validates every
attribute against a Graphviz grammar and writes the result as DOT text, or
renders it to an image through Graphviz.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.grammarPath, "grammar", "", "attribute grammar TOML file (default: built-in, or $"+envGrammar+")")
	flags.StringVar(&c.engine, "engine", "", "renderer: exec (default) or embedded (or $"+envRenderer+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.grammarCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// grammars loads the active grammar and describes where it came from.
func (c *CLI) grammars() (attr.Grammars, string, error) {
	path := c.grammarPath
	if path == "" {
		path = os.Getenv(envGrammar)
	}
	if path == "" {
		return attr.Default(), builtinGrammar, nil
	}
	g, err := attr.LoadFile(path)
	if err != nil {
		return attr.Grammars{}, "", err
	}
	return g, path, nil
}

// newRunner creates a pipeline runner from the persistent flags.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	g, source, err := c.grammars()
	if err != nil {
		return nil, err
	}

	engine := c.engine
	if engine == "" {
		engine = os.Getenv(envRenderer)
	}
	rd, err := pipeline.NewRenderer(engine)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("pipeline configured", "grammar", source, "renderer", rd.Name())
	return pipeline.NewRunner(
		pipeline.WithGrammars(g),
		pipeline.WithRenderer(rd),
		pipeline.WithLogger(c.Logger),
	), nil
}
