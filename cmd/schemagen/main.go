// Command schemagen compiles schema manifests into a graph and inspects or
// renders it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/star-e/generator-sub002/internal/cli"
	errs "github.com/star-e/generator-sub002/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	if code := errs.ExitCode(err); code != 0 {
		if code != 130 {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}
