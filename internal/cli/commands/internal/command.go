// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/api/bwsapi"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/infra"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)
}

// DebugWriter returns the destination for diagnostic output, or nil when
// --debug is not set. Diagnostics always go to stderr so that stdout stays
// machine-readable.
func DebugWriter(cmd *cli.Command) io.Writer {
	if !cmd.Bool("debug") {
		return nil
	}

	return cmd.Root().ErrWriter
}

// Connect loads server settings and returns an authenticated SDK client.
// The caller owns the client and must Close it.
func Connect(cmd *cli.Command, accessToken string) (bwsapi.Client, error) {
	server, err := config.LoadServer("")
	if err != nil {
		return nil, err
	}

	if w := DebugWriter(cmd); w != nil {
		output.Println(w, "Authenticating with access token...")
	}

	return infra.NewAuthenticatedClient(server, accessToken)
}
