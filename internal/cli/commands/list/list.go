// Package list provides the list command.
package list

import (
	"context"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/pager"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

// Runner executes the list command.
type Runner struct {
	UseCase *secret.ListUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the list command.
type Options struct {
	Config config.List
	JSON   bool
}

// JSONEntry represents one secret in the JSON output. ProjectID and Note
// are null when the project filter did not force a full fetch.
type JSONEntry struct {
	SecretID  string  `json:"secret_id"`
	Key       string  `json:"key"`
	ProjectID *string `json:"project_id"`
	Note      *string `json:"note"`
}

//nolint:gochecknoglobals // Immutable table layout
var tableColumns = []output.Column{
	{Name: "ID", Min: 36, Max: 36},
	{Name: "Key", Min: 20, Max: 50},
	{Name: "Project ID", Min: 36, Max: 36},
	{Name: "Note", Min: 30, Max: 50},
}

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List secrets in an organization",
		Description: `List secrets, optionally filtered by a key substring or a project.

The project filter fetches each candidate secret to learn its project,
which also fills the Project ID and Note columns.

EXAMPLES:
  bwsm list --org-id <uuid>
  bwsm list --org-id <uuid> --key-pattern db-
  bwsm list --org-id <uuid> --project-id <uuid> --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "access-token",
				Usage: "Machine account access token",
			},
			&cli.StringFlag{
				Name:  "org-id",
				Usage: "Organization UUID",
			},
			&cli.StringFlag{
				Name:  "project-id",
				Usage: "Only show secrets belonging to this project UUID",
			},
			&cli.StringFlag{
				Name:  "key-pattern",
				Usage: "Only show secrets whose key contains this substring (case-sensitive)",
			},
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as a JSON array",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write diagnostics to stderr",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	resolver := &config.Resolver{}
	cfg := resolver.ResolveList(config.ListFlags{
		AccessToken: cmd.String("access-token"),
		OrgID:       cmd.String("org-id"),
		ProjectID:   cmd.String("project-id"),
		KeyPattern:  cmd.String("key-pattern"),
	})
	if cfg.AccessToken == "" {
		return apperr.Usage("an access token is required; provide --access-token or set BWS_ACCESS_TOKEN")
	}

	client, err := cliinternal.Connect(cmd, cfg.AccessToken)
	if err != nil {
		return err
	}
	defer client.Close()

	jsonOut := cmd.Bool("json")
	noPager := cmd.Bool("no-pager") || jsonOut

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &secret.ListUseCase{
				Client: client.Secrets(),
				Debug:  cliinternal.DebugWriter(cmd),
			},
			Stdout: w,
			Stderr: cmd.Root().ErrWriter,
		}

		return r.Run(ctx, Options{Config: cfg, JSON: jsonOut})
	})
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	entries, err := r.UseCase.Execute(ctx, secret.ListInput{
		OrgID:      opts.Config.OrgID,
		KeyPattern: opts.Config.KeyPattern,
		ProjectID:  opts.Config.ProjectID,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		out := lo.Map(entries, func(e secret.Entry, _ int) JSONEntry {
			return JSONEntry{SecretID: e.ID, Key: e.Key, ProjectID: e.ProjectID, Note: e.Note}
		})

		return output.JSONLine(r.Stdout, out)
	}

	if len(entries) == 0 {
		output.Info(r.Stdout, "No secrets found.")

		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.ID, e.Key, lo.FromPtr(e.ProjectID), lo.FromPtr(e.Note)}
	}
	output.Table(r.Stdout, tableColumns, rows)

	return nil
}
