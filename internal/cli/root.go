package cli

import (
	"context"
	"os"
)

// Execute runs the dotwalk CLI with the process arguments, logging to
// stderr at info level (debug with --verbose).
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return New(os.Stderr, LogInfo).RootCommand().ExecuteContext(ctx)
}
