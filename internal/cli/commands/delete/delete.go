// Package delete provides the delete command.
package delete

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/confirm"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

// Runner executes the delete command.
type Runner struct {
	UseCase  *secret.DeleteUseCase
	Prompter *confirm.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the delete command.
type Options struct {
	Config config.Delete
	Force  bool
	JSON   bool
}

// JSONOutput represents the JSON output structure for the delete command.
type JSONOutput struct {
	DeletedSecretIDs []string `json:"deleted_secret_ids"`
	Count            int      `json:"count"`
}

// Command returns the delete command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete one or more secrets",
		Description: `Delete secrets by UUID or by a unique name. Every target is verified to
exist before anything is deleted; the whole batch is rejected when any
target is missing.

Deleting by name is refused when the name matches more than one secret.

EXAMPLES:
  bwsm delete --secret-id <uuid>
  bwsm delete --secret-id <uuid1>,<uuid2> --force
  bwsm delete --secret-name old-api-key --org-id <uuid>`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "access-token",
				Usage: "Machine account access token",
			},
			&cli.StringSliceFlag{
				Name:  "secret-id",
				Usage: "Secret UUID (repeatable, or comma-separated)",
			},
			&cli.StringFlag{
				Name:  "secret-name",
				Usage: "Secret name (must be unique in the organization)",
			},
			&cli.StringFlag{
				Name:  "org-id",
				Usage: "Organization UUID (required for name lookup)",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Skip the confirmation prompt",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as a single JSON line",
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
	cfg := resolver.ResolveDelete(config.DeleteFlags{
		AccessToken: cmd.String("access-token"),
		SecretIDs:   cmd.StringSlice("secret-id"),
		SecretName:  cmd.String("secret-name"),
		OrgID:       cmd.String("org-id"),
	})
	if cfg.AccessToken == "" {
		return apperr.Usage("an access token is required; provide --access-token or set BWS_ACCESS_TOKEN")
	}
	if len(cfg.SecretIDs) == 0 && cfg.SecretName == "" {
		return apperr.Usage("a target is required; provide --secret-id <uuid> or --secret-name <name>")
	}

	client, err := cliinternal.Connect(cmd, cfg.AccessToken)
	if err != nil {
		return err
	}
	defer client.Close()

	r := &Runner{
		UseCase: &secret.DeleteUseCase{
			Client: client.Secrets(),
			Debug:  cliinternal.DebugWriter(cmd),
		},
		Prompter: &confirm.Prompter{Stdin: os.Stdin, Stderr: cmd.Root().ErrWriter},
		Stdout:   cmd.Root().Writer,
		Stderr:   cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Config: cfg,
		Force:  cmd.Bool("force"),
		JSON:   cmd.Bool("json"),
	})
}

// Run executes the delete command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	targets, err := r.UseCase.ResolveTargets(ctx, opts.Config.SecretIDs, opts.Config.SecretName, opts.Config.OrgID)
	if err != nil {
		return err
	}

	ok, err := r.Prompter.Confirm(fmt.Sprintf("Delete %d secret(s)?", len(targets)), opts.Force)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Usage("deletion cancelled")
	}

	result, err := r.UseCase.Execute(ctx, targets)
	if err != nil {
		return err
	}

	if opts.JSON {
		return output.JSONLine(r.Stdout, JSONOutput{
			DeletedSecretIDs: result.DeletedIDs,
			Count:            len(result.DeletedIDs),
		})
	}

	// Stdout carries only the deleted IDs, one per line, for shell
	// pipelines; the confirmation goes to stderr.
	output.Success(r.Stderr, "Deleted %d secret(s)", len(result.DeletedIDs))
	for _, id := range result.DeletedIDs {
		output.Println(r.Stdout, id)
	}

	return nil
}
