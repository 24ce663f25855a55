package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/internal/server"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command, which exposes the pipeline over
// HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		maxBody int64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve DOT conversion over HTTP",
		Long: `Serve the pipeline over HTTP.

  POST /v1/dot             object document in, DOT text out
  POST /v1/render/{format} object document in, rendered image out
  GET  /healthz            liveness and build information`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s := server.New(runner, loggerFromContext(ctx), server.WithMaxBodyBytes(maxBody))
			return s.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")

	return cmd
}
