// Package get provides the get command.
package get

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

// Runner executes the get command.
type Runner struct {
	UseCase *secret.GetUseCase
	Stdout  io.Writer
	Stderr  io.Writer
}

// Options holds the options for the get command.
type Options struct {
	Config config.Get
	JSON   bool
}

// JSONOutput represents the JSON output structure for the get command.
type JSONOutput struct {
	SecretID   string `json:"secret_id,omitempty"`
	SecretName string `json:"secret_name,omitempty"`
	Source     string `json:"source"`
	OrgID      string `json:"org_id,omitempty"`
	Value      string `json:"value"`
}

// Command returns the get command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "get",
		Usage: "Retrieve a secret value",
		Description: `Fetch a secret by its UUID or by its unique name and print the value.

Configuration falls back from flags to environment variables:
  --access-token   BWS_ACCESS_TOKEN
  --secret-id      BWS_SECRET_ID
  --secret-name    BWS_SECRET_NAME
  --org-id         BWS_ORG_ID

Name lookup requires an organization ID and fails when the name matches
more than one secret.

EXAMPLES:
  bwsm get --secret-id 3b5e0f1e-...                    Fetch by UUID
  bwsm get --secret-name db-password --org-id <uuid>   Fetch by name
  DB_PASS=$(bwsm get --secret-name db-password)        Use in shell variable`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "access-token",
				Usage: "Machine account access token",
			},
			&cli.StringFlag{
				Name:  "secret-id",
				Usage: "Secret UUID",
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
	if cmd.String("secret-id") != "" && cmd.String("secret-name") != "" {
		return apperr.Usage("--secret-id and --secret-name cannot be used together")
	}

	resolver := &config.Resolver{}
	cfg := resolver.ResolveGet(config.GetFlags{
		AccessToken: cmd.String("access-token"),
		SecretID:    cmd.String("secret-id"),
		SecretName:  cmd.String("secret-name"),
		OrgID:       cmd.String("org-id"),
	})
	if cfg.Source == config.SourceMissing {
		return apperr.Usage(`an access token and a secret identifier are required

Provide them via flags:
  --access-token <token> and --secret-id <uuid> or --secret-name <name>
or via environment variables:
  BWS_ACCESS_TOKEN and BWS_SECRET_ID or BWS_SECRET_NAME`)
	}

	client, err := cliinternal.Connect(cmd, cfg.AccessToken)
	if err != nil {
		return err
	}
	defer client.Close()

	r := &Runner{
		UseCase: &secret.GetUseCase{
			Client: client.Secrets(),
			Debug:  cliinternal.DebugWriter(cmd),
		},
		Stdout: cmd.Root().Writer,
		Stderr: cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{Config: cfg, JSON: cmd.Bool("json")})
}

// Run executes the get command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, secret.GetInput{
		Identifier: opts.Config.Identifier,
		Kind:       opts.Config.Kind,
		OrgID:      opts.Config.OrgID,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		out := JSONOutput{
			Source: string(opts.Config.Source),
			OrgID:  opts.Config.OrgID,
			Value:  result.Value,
		}
		switch opts.Config.Kind {
		case config.KindID:
			out.SecretID = opts.Config.Identifier
		case config.KindName:
			out.SecretName = opts.Config.Identifier
		}

		return output.JSONLine(r.Stdout, out)
	}

	output.Println(r.Stdout, result.Value)

	return nil
}
