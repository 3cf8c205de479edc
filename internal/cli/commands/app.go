// Package commands provides the command-line interface for bwsm.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/cli/commands/create"
	deletecmd "github.com/bwsm-dev/bwsm/internal/cli/commands/delete"
	"github.com/bwsm-dev/bwsm/internal/cli/commands/get"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/commands/list"
	"github.com/bwsm-dev/bwsm/internal/cli/commands/update"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "bwsm",
		Usage:   "Manage secrets in Bitwarden Secrets Manager",
		Version: "0.1.0",
		Commands: []*cli.Command{
			get.Command(),
			create.Command(),
			update.Command(),
			deletecmd.Command(),
			list.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
