// Command launchdims compiles launch dimension manifests and keeps a local
// catalog of the results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/roach88/launchdims/internal/cli"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, outW, errW io.Writer, args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(errW, err)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
