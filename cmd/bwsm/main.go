package main

import (
	"context"
	"os"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	"github.com/bwsm-dev/bwsm/internal/cli/commands"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
)

func main() {
	if err := commands.App.Run(context.Background(), os.Args); err != nil {
		output.Error(os.Stderr, "%s", apperr.Headline(err))
		os.Exit(apperr.ExitCode(err))
	}
}
