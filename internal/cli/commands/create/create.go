// Package create provides the create command.
package create

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/cli/valueinput"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/secmem"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

// Runner executes the create command.
type Runner struct {
	UseCase *secret.CreateUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the create command.
type Options struct {
	Config config.Create
	Value  *secmem.Value
	// AllowDuplicate skips the duplicate key check.
	AllowDuplicate bool
	JSON           bool
}

// JSONOutput represents the JSON output structure for the create command.
type JSONOutput struct {
	SecretID   string   `json:"secret_id"`
	Key        string   `json:"key"`
	OrgID      string   `json:"org_id"`
	Note       string   `json:"note,omitempty"`
	ProjectIDs []string `json:"project_ids,omitempty"`
}

// Command returns the create command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new secret",
		Description: `Create a secret in one or more projects of an organization.

The value comes from --value, from piped stdin, or from a hidden prompt on
an interactive terminal. Creating a second secret with an existing key in
the same project is refused unless --allow-duplicate is given.

EXAMPLES:
  bwsm create --key db-password --value hunter2 --org-id <uuid> --project-ids <uuid>
  openssl rand -base64 32 | bwsm create --key api-key --org-id <uuid> --project-ids <uuid>
  bwsm create --key db-password --org-id <uuid> --project-ids <uuid>   Prompt for value`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "access-token",
				Usage: "Machine account access token",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "Secret key (name)",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Secret value (falls back to stdin, then an interactive prompt)",
			},
			&cli.StringFlag{
				Name:  "note",
				Usage: "Optional note",
			},
			&cli.StringFlag{
				Name:  "org-id",
				Usage: "Organization UUID",
			},
			&cli.StringFlag{
				Name:  "project-ids",
				Usage: "Comma-separated project UUIDs the secret belongs to",
			},
			&cli.BoolFlag{
				Name:  "allow-duplicate",
				Usage: "Create even when a secret with the same key exists in a target project",
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
	cfg := resolver.ResolveCreate(config.CreateFlags{
		AccessToken: cmd.String("access-token"),
		OrgID:       cmd.String("org-id"),
		Key:         cmd.String("key"),
		Value:       cmd.String("value"),
		Note:        cmd.String("note"),
		ProjectIDs:  cmd.String("project-ids"),
	})

	// Validate everything the backend call needs before touching the
	// network or prompting for a value.
	if cfg.AccessToken == "" {
		return apperr.Usage("an access token is required; provide --access-token or set BWS_ACCESS_TOKEN")
	}
	if cfg.Key == "" {
		return apperr.Usage("--key is required")
	}
	if cfg.OrgID == "" {
		return apperr.Usage("an organization ID is required; provide --org-id or set BWS_ORG_ID")
	}
	if len(cfg.ProjectIDs) == 0 {
		return apperr.New(apperr.CategoryProjectIDRequired,
			"at least one project ID is required; secrets must be created within a project, not at the organization level")
	}

	reader := &valueinput.Reader{Stdin: os.Stdin, Stderr: cmd.Root().ErrWriter}
	value, err := reader.Read(cfg.Value)
	if err != nil {
		return err
	}

	client, err := cliinternal.Connect(cmd, cfg.AccessToken)
	if err != nil {
		return err
	}
	defer client.Close()

	r := &Runner{
		UseCase: &secret.CreateUseCase{
			Client: client.Secrets(),
			Debug:  cliinternal.DebugWriter(cmd),
		},
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Config:         cfg,
		Value:          value,
		AllowDuplicate: cmd.Bool("allow-duplicate"),
		JSON:           cmd.Bool("json"),
	})
}

// Run executes the create command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	value, err := opts.Value.Open()
	if err != nil {
		return err
	}

	result, err := r.UseCase.Execute(ctx, secret.CreateInput{
		OrgID:          opts.Config.OrgID,
		Key:            opts.Config.Key,
		Value:          value,
		Note:           opts.Config.Note,
		ProjectIDs:     opts.Config.ProjectIDs,
		AllowDuplicate: opts.AllowDuplicate,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		return output.JSONLine(r.Stdout, JSONOutput{
			SecretID:   result.SecretID,
			Key:        opts.Config.Key,
			OrgID:      opts.Config.OrgID,
			Note:       opts.Config.Note,
			ProjectIDs: opts.Config.ProjectIDs,
		})
	}

	// Stdout carries only the new secret ID so it can be captured by
	// shell pipelines; the human-readable confirmation goes to stderr.
	output.Success(r.Stderr, "Created secret %s", result.SecretID)
	output.Println(r.Stdout, result.SecretID)

	return nil
}
